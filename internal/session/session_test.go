package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
)

func TestAnonymous(t *testing.T) {
	s := New(MemoryScope{}, user.NewStore())

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, AccessLogin, s.RequireAdmin())
}

func TestLoginAdmin(t *testing.T) {
	scope := MemoryScope{}
	s := New(scope, user.NewStore())

	u, err := s.Login("admin@andersoncvi.edu", "admin123")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "/admin", Destination(u))

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u, current)
	assert.Empty(t, current.Password)
	assert.Empty(t, u.Password)
	assert.Equal(t, AccessPermit, s.RequireAdmin())
	assert.Contains(t, scope[currentUserKey], `"email":"admin@andersoncvi.edu"`)
	assert.NotContains(t, scope[currentUserKey], "admin123")
}

func TestLoginNonAdminIsDenied(t *testing.T) {
	users := user.NewStore()
	_, err := users.Register(model.User{FirstName: "Sam", Email: "sam@example.com", Password: "pw"})
	require.NoError(t, err)

	s := New(MemoryScope{}, users)
	u, err := s.Login("sam@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/", Destination(u))
	assert.Equal(t, AccessDenied, s.RequireAdmin())
}

func TestLoginInvalidCredentials(t *testing.T) {
	scope := MemoryScope{}
	s := New(scope, user.NewStore())

	_, errWrongPassword := s.Login("admin@andersoncvi.edu", "nope")
	_, errWrongEmail := s.Login("nobody@andersoncvi.edu", "admin123")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errWrongEmail.Error())
	assert.Empty(t, scope)
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := New(MemoryScope{}, user.NewStore())
	_, err := s.Login("admin@andersoncvi.edu", "admin123")
	require.NoError(t, err)

	s.Logout()
	s.Logout()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, AccessLogin, s.RequireAdmin())
}

func TestSessionsAreIndependent(t *testing.T) {
	users := user.NewStore()
	a := New(MemoryScope{}, users)
	b := New(MemoryScope{}, users)

	_, err := a.Login("admin@andersoncvi.edu", "admin123")
	require.NoError(t, err)

	assert.Equal(t, AccessPermit, a.RequireAdmin())
	assert.Equal(t, AccessLogin, b.RequireAdmin())
}

func TestCurrentUserFailsSoft(t *testing.T) {
	s := New(MemoryScope{currentUserKey: "{not json"}, user.NewStore())

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, AccessLogin, s.RequireAdmin())
}

// The snapshot taken at login does not follow later changes to the account.
func TestSnapshotIsPinned(t *testing.T) {
	scope := MemoryScope{}
	s := New(scope, user.NewStore())
	_, err := s.Login("admin@andersoncvi.edu", "admin123")
	require.NoError(t, err)

	other := New(scope, user.NewStore(user.WithUsers()))
	current, ok := other.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Admin", current.FirstName)
	assert.Equal(t, AccessPermit, other.RequireAdmin())
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "permit", AccessPermit.String())
	assert.Equal(t, "login", AccessLogin.String())
	assert.Equal(t, "denied", AccessDenied.String())
}

func TestCookiesRoundTrip(t *testing.T) {
	cookies := NewCookies(NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), "test_session", user.NewStore())

	login := cookies.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := FromContext(r.Context()).Login("admin@andersoncvi.edu", "admin123")
		require.NoError(t, err)
		require.NoError(t, Save(w, r))
	}))

	rec := httptest.NewRecorder()
	login.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	resp := rec.Result()
	defer resp.Body.Close()
	require.NotEmpty(t, resp.Cookies())

	var access Access
	check := cookies.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		access = FromContext(r.Context()).RequireAdmin()
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range resp.Cookies() {
		req.AddCookie(c)
	}
	check.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, AccessPermit, access)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})
	check.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, AccessLogin, access)
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	s := FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.Equal(t, AccessLogin, s.RequireAdmin())

	_, err := s.Login("admin@andersoncvi.edu", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
