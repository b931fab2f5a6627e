package user

import (
	"sync"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

// AdminEmails get administrator rights when they register. Membership is
// checked once, at registration, and never again.
var AdminEmails = []string{
	"admin@andersoncvi.edu",
	"principal@andersoncvi.edu",
	"teacher@andersoncvi.edu",
}

// Seed returns the accounts present at startup: a single administrator.
func Seed() []model.User {
	return []model.User{
		{
			ID:        1,
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@andersoncvi.edu",
			Password:  "admin123",
			IsAdmin:   true,
		},
	}
}

// Store owns the account collection for the lifetime of the process.
type Store struct {
	mu          sync.RWMutex
	users       []*model.User
	adminEmails []string
}

type StoreOption func(*Store)

// WithUsers replaces the seeded accounts.
func WithUsers(users ...model.User) StoreOption {
	return func(s *Store) {
		s.users = s.users[:0]
		for _, u := range users {
			u := u
			s.users = append(s.users, &u)
		}
	}
}

// WithAdminEmails replaces the administrator allow-list.
func WithAdminEmails(emails ...string) StoreOption {
	return func(s *Store) {
		s.adminEmails = emails
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{adminEmails: AdminEmails}
	WithUsers(Seed()...)(s)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns every account that is not an administrator. Administrators
// are left off the management listing; they can still log in.
func (s *Store) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []model.User{}
	for _, u := range s.users {
		if !u.IsAdmin {
			list = append(list, *u)
		}
	}

	return list
}

func (s *Store) Get(id int) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return *u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Register adds u unless its email is already taken (exact match). IsAdmin is
// taken from the allow-list, and the id from the collection size.
func (s *Store) Register(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return model.User{}, model.ErrDuplicateEmail
		}
	}

	u.ID = len(s.users) + 1
	u.IsAdmin = s.isAdminEmail(u.Email)
	s.users = append(s.users, &u)

	return u, nil
}

// FindByCredentials returns the account whose email and password both match
// exactly. There is no hashing, rate limiting or lockout.
func (s *Store) FindByCredentials(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return *u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Delete is part of the admin surface but does not remove anything yet: it
// always reports success and leaves the collection as it is.
func (s *Store) Delete(id int) error {
	return nil
}

func (s *Store) isAdminEmail(email string) bool {
	for _, e := range s.adminEmails {
		if e == email {
			return true
		}
	}

	return false
}
