package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
)

var teapot = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

// loggedInAs runs AdminOnly on a session that has just logged in with email.
func loggedInAs(t *testing.T, users *user.Store, email, password string) http.Handler {
	t.Helper()

	cookies := session.NewCookies(session.NewCookieStore([]byte("admin-test-secret")), "news_session", users)

	return cookies.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email != "" {
			_, err := session.FromContext(r.Context()).Login(email, password)
			require.NoError(t, err)
		}
		AdminOnly(teapot).ServeHTTP(w, r)
	}))
}

func TestAdminOnly(t *testing.T) {
	users := user.NewStore()
	_, err := users.Register(model.User{FirstName: "Sam", Email: "sam@example.com", Password: "pw"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"anonymous", "", "", http.StatusUnauthorized},
		{"regular user", "sam@example.com", "pw", http.StatusForbidden},
		{"admin", "admin@andersoncvi.edu", "admin123", http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			loggedInAs(t, users, tt.email, tt.password).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAdminOnlyWithoutSessionMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	AdminOnly(teapot).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}
