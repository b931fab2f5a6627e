package article

import (
	"sync"
	"time"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

// Store owns the article collection for the lifetime of the process.
// Nothing is persisted: a restart brings back the seed data.
type Store struct {
	mu       sync.RWMutex
	articles []*model.Article
	now      func() time.Time
}

type StoreOption func(*Store)

// WithArticles replaces the seed data.
func WithArticles(articles ...model.Article) StoreOption {
	return func(s *Store) {
		s.articles = s.articles[:0]
		for _, a := range articles {
			a := a
			s.articles = append(s.articles, &a)
		}
	}
}

// WithClock sets the clock used to date new articles.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns a store holding the seed articles unless overridden.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	WithArticles(Seed()...)(s)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create appends a, assigning the next id and, when a.Date is unset, today's
// date. It returns the new id. Field contents are not validated.
func (s *Store) Create(a model.Article) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID()
	if a.Date.IsZero() {
		a.Date = model.DateOf(s.now())
	}
	s.articles = append(s.articles, &a)

	return a.ID
}

// List returns a copy of every article in insertion order.
func (s *Store) List() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		list = append(list, *a)
	}

	return list
}

func (s *Store) Get(id int) (model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			return *a, nil
		}
	}

	return model.Article{}, model.ErrNotFound
}

// Update merges patch over the article with the given id and returns the
// result. The id itself never changes.
func (s *Store) Update(id int, patch model.ArticlePatch) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.ID == id {
			*a = patch.Apply(*a)

			return *a, nil
		}
	}

	return model.Article{}, model.ErrNotFound
}

// Delete removes the first article with the given id and reports whether
// anything was removed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.articles {
		if a.ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)

			return true
		}
	}

	return false
}

// nextID is one past the largest id held, or 1 when the store is empty.
// Deleting the newest article frees its id for the next Create.
func (s *Store) nextID() int {
	highest := 0
	for _, a := range s.articles {
		if a.ID > highest {
			highest = a.ID
		}
	}

	return highest + 1
}
