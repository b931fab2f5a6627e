//go:build !integration
// +build !integration

package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MrLamegame/Anderson-CVI-News/internal/article"
	"github.com/MrLamegame/Anderson-CVI-News/internal/metrics"
	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/server"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
)

func newClient(t *testing.T) *Client {
	t.Helper()

	ts := httptest.NewServer(server.NewRouter(server.Deps{
		Logger:      zaptest.NewLogger(t).Sugar(),
		Articles:    article.NewStore(),
		Users:       user.NewStore(),
		Sessions:    session.NewCookieStore([]byte("client-test-secret")),
		SessionName: "news_session",
		Metrics:     metrics.Global("client-test"),
	}))
	t.Cleanup(ts.Close)

	c, err := New(ts.URL)
	require.NoError(t, err)

	return c
}

func TestPing(t *testing.T) {
	s, err := newClient(t).Ping()
	require.NoError(t, err)
	assert.Equal(t, "pong", s)
}

func TestArticles(t *testing.T) {
	c := newClient(t)

	all, err := c.Articles("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sports, err := c.Articles(model.CategorySports)
	require.NoError(t, err)
	require.Len(t, sports, 1)
	assert.Equal(t, 1, sports[0].ID)

	a, err := c.Article(2)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryAcademics, a.Category)
	assert.Equal(t, model.MustParseDate("2025-09-12"), a.Date)

	_, err = c.Article(42)
	var status *StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusNotFound, status.Code)
}

func TestLoginAndPublish(t *testing.T) {
	c := newClient(t)

	_, err := c.Publish(model.Article{Title: "Too soon", Category: model.CategoryNews})
	var status *StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusUnauthorized, status.Code)

	_, err = c.Login("admin@andersoncvi.edu", "wrong")
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusUnauthorized, status.Code)

	next, err := c.Login("admin@andersoncvi.edu", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "/admin", next)

	published, err := c.Publish(model.Article{
		Title:    "Art Show Opens",
		Category: model.CategoryArts,
		Author:   "Art Department",
		Date:     model.MustParseDate("2025-09-18"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, published.ID)
	assert.Equal(t, "Art Show Opens", published.Title)

	arts, err := c.Articles(model.CategoryArts)
	require.NoError(t, err)
	assert.Len(t, arts, 1)
}
