// Package session tracks who is logged in for one visitor. The logged-in
// user is kept as a serialized snapshot in session-scoped storage, so it does
// not follow later changes to the stored account.
package session

import (
	"errors"

	"github.com/goccy/go-json"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

const currentUserKey = "currentUser"

// ErrInvalidCredentials is returned by Login. It never says which of email
// or password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Scope is session-scoped key/value storage.
type Scope interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Authenticator checks a pair of credentials.
type Authenticator interface {
	FindByCredentials(email, password string) (model.User, error)
}

// Access is the outcome of an admin gate check.
type Access int

const (
	AccessPermit Access = iota
	// AccessLogin means nobody is logged in; send the visitor to the login page.
	AccessLogin
	// AccessDenied means the visitor is logged in but not an administrator.
	AccessDenied
)

func (a Access) String() string {
	switch a {
	case AccessPermit:
		return "permit"
	case AccessLogin:
		return "login"
	case AccessDenied:
		return "denied"
	default:
		return "unknown"
	}
}

type Session struct {
	scope Scope
	users Authenticator
}

func New(scope Scope, users Authenticator) *Session {
	return &Session{scope: scope, users: users}
}

// CurrentUser returns the logged-in user's snapshot. Its Password is always
// empty. A missing or unreadable snapshot counts as nobody logged in.
func (s *Session) CurrentUser() (model.User, bool) {
	raw, ok := s.scope.Get(currentUserKey)
	if !ok || raw == "" {
		return model.User{}, false
	}

	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.User{}, false
	}

	return u, true
}

// Login stores a snapshot of the matching user. The snapshot is the full
// record except Password, which is cleared because the cookie holding it is
// readable by the client; the returned user has no password either.
func (s *Session) Login(email, password string) (model.User, error) {
	u, err := s.users.FindByCredentials(email, password)
	if err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	u.Password = ""

	b, err := json.Marshal(u)
	if err != nil {
		return model.User{}, err
	}
	s.scope.Set(currentUserKey, string(b))

	return u, nil
}

// Logout forgets the current user. Calling it when logged out is fine.
func (s *Session) Logout() {
	s.scope.Delete(currentUserKey)
}

func (s *Session) RequireAdmin() Access {
	u, ok := s.CurrentUser()
	switch {
	case !ok:
		return AccessLogin
	case !u.IsAdmin:
		return AccessDenied
	default:
		return AccessPermit
	}
}

// Destination is where u lands after logging in.
func Destination(u model.User) string {
	if u.IsAdmin {
		return "/admin"
	}

	return "/"
}

// MemoryScope is a Scope held in a plain map. It backs tests and callers
// that keep the session in process.
type MemoryScope map[string]string

func (m MemoryScope) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryScope) Set(key, value string) { m[key] = value }

func (m MemoryScope) Delete(key string) { delete(m, key) }
