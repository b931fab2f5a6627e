// Package view derives the public listings from a snapshot of the article
// collection. Nothing here mutates its input.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

const (
	// HomeLatestCount is how many articles the home page lists as latest.
	HomeLatestCount = 6
	// RelatedLimit is how many related articles an article page shows.
	RelatedLimit = 3

	displayDateLayout = "January 2, 2006"
)

// Featured returns the featured articles in collection order.
func Featured(articles []model.Article) []model.Article {
	return filter(articles, func(a model.Article) bool { return a.Featured })
}

// Latest returns up to n articles, most recent date first.
func Latest(articles []model.Article, n int) []model.Article {
	if n <= 0 {
		return []model.Article{}
	}

	sorted := make([]model.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

// ByCategory returns the articles filed under c, or all of them when c is empty.
func ByCategory(articles []model.Article, c model.Category) []model.Article {
	if c == "" {
		return filter(articles, func(model.Article) bool { return true })
	}

	return filter(articles, func(a model.Article) bool { return a.Category == c })
}

// Related returns up to limit other articles in category c, in collection order.
func Related(articles []model.Article, c model.Category, excludeID, limit int) []model.Article {
	related := filter(articles, func(a model.Article) bool {
		return a.Category == c && a.ID != excludeID
	})
	if limit < 0 {
		limit = 0
	}
	if limit < len(related) {
		related = related[:limit]
	}

	return related
}

// FormatDisplayDate renders d as e.g. "September 15, 2025". The output is
// always US English.
func FormatDisplayDate(d model.Date) string {
	if d.IsZero() {
		return ""
	}

	return d.Time().Format(displayDateLayout)
}

// Paragraphs splits article content on line breaks, one entry per line.
func Paragraphs(content string) []string {
	return strings.Split(content, "\n")
}

// Badge is the upper-cased category label shown on article cards.
func Badge(c model.Category) string {
	return strings.ToUpper(string(c))
}

// CategoryHeading returns the title and description of a category page.
func CategoryHeading(c model.Category) (title, description string) {
	if c == "" {
		return "All Articles", "Browse all articles"
	}

	title = cases.Title(language.English).String(string(c))

	return title, "Browse articles in the " + string(c) + " category"
}

func filter(articles []model.Article, keep func(model.Article) bool) []model.Article {
	out := []model.Article{}
	for _, a := range articles {
		if keep(a) {
			out = append(out, a)
		}
	}

	return out
}
