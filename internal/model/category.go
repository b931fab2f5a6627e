package model

import (
	"errors"
	"fmt"
)

// Category is the section an article is filed under. The set is closed;
// free-form strings are converted with ParseCategory at the edges.
type Category string

const (
	CategorySports    Category = "sports"
	CategoryAcademics Category = "academics"
	CategoryEvents    Category = "events"
	CategoryArts      Category = "arts"
	CategoryNews      Category = "news"
)

// ErrUnknownCategory is returned when a string names no known category.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every known category in menu order.
func Categories() []Category {
	return []Category{
		CategorySports,
		CategoryAcademics,
		CategoryEvents,
		CategoryArts,
		CategoryNews,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory matches s exactly (case-sensitive) against the known set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}

	return c, nil
}
