package session

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

type ctxKey struct{}

// NewCookieStore returns a signed cookie store whose cookies last until the
// browser session ends.
func NewCookieStore(secret []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

// Cookies binds a Session backed by a gorilla session cookie to each request.
type Cookies struct {
	store sessions.Store
	name  string
	users Authenticator
}

func NewCookies(store sessions.Store, name string, users Authenticator) *Cookies {
	return &Cookies{store: store, name: name, users: users}
}

type binding struct {
	raw     *sessions.Session
	session *Session
}

type cookieScope struct {
	raw *sessions.Session
}

func (c cookieScope) Get(key string) (string, bool) {
	v, ok := c.raw.Values[key].(string)
	return v, ok
}

func (c cookieScope) Set(key, value string) { c.raw.Values[key] = value }

func (c cookieScope) Delete(key string) { delete(c.raw.Values, key) }

// Middleware loads the visitor's session. A cookie that fails to decode is
// replaced by an empty session.
func (c *Cookies) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := c.store.Get(r, c.name)
		if err != nil {
			logging.FromContext(r.Context()).Infow("discarding unreadable session cookie", "error", err)
		}
		if raw == nil {
			raw = sessions.NewSession(c.store, c.name)
		}

		b := &binding{raw: raw, session: New(cookieScope{raw: raw}, c.users)}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, b)))
	})
}

// FromContext returns the request's Session. Outside of Cookies.Middleware it
// returns an anonymous session with nowhere to authenticate against.
func FromContext(ctx context.Context) *Session {
	if b, ok := ctx.Value(ctxKey{}).(*binding); ok {
		return b.session
	}

	return New(MemoryScope{}, nobody{})
}

// Save writes the session cookie. Call it after Login or Logout and before
// the response body is written.
func Save(w http.ResponseWriter, r *http.Request) error {
	b, ok := r.Context().Value(ctxKey{}).(*binding)
	if !ok {
		return nil
	}

	return b.raw.Save(r, w)
}

type nobody struct{}

func (nobody) FindByCredentials(string, string) (model.User, error) {
	return model.User{}, ErrInvalidCredentials
}
