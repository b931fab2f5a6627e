package errresponse

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
)

func TestRenderSetsStatus(t *testing.T) {
	tests := []struct {
		name string
		resp *ErrResponse
		want int
	}{
		{"invalid request", ErrInvalidRequest(errors.New("bad")), http.StatusBadRequest},
		{"render", ErrRender(errors.New("bad")), http.StatusUnprocessableEntity},
		{"conflict", ErrConflict(errors.New("taken")), http.StatusConflict},
		{"credentials", ErrInvalidCredentials(errors.New("nope")), http.StatusUnauthorized},
		{"internal", ErrInternal(errors.New("boom")), http.StatusInternalServerError},
		{"unauthorized", ErrUnauthorized(notice.LoginRequired), http.StatusUnauthorized},
		{"forbidden", ErrForbidden(notice.AccessDenied), http.StatusForbidden},
		{"not found", ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, render.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.resp))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWithNoticeCopies(t *testing.T) {
	n := ErrNotFound.WithNotice(notice.ArticleNotFound)

	assert.Nil(t, ErrNotFound.Notice)
	assert.Equal(t, &notice.Notice{Kind: notice.Error, Message: notice.ArticleNotFound}, n.Notice)
	assert.Equal(t, http.StatusNotFound, n.HTTPStatusCode)
}

func TestInternalHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, render.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), ErrInternal(errors.New("secret detail"))))

	assert.NotContains(t, w.Body.String(), "secret detail")
}
