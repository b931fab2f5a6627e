package articlerequest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

func bindInto(t *testing.T, data *ArticleRequest, body string) (*ArticleRequest, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/admin/articles", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	return data, render.Bind(r, data)
}

func bind(t *testing.T, body string) (*ArticleRequest, error) {
	t.Helper()

	return bindInto(t, &ArticleRequest{}, body)
}

func TestBindFullArticle(t *testing.T) {
	data, err := bind(t, `{
		"id": 99,
		"title": "Robotics Club Takes Second",
		"category": "academics",
		"author": "Club Staff",
		"excerpt": "Short",
		"content": "Line one\nLine two",
		"featured": true
	}`)
	require.NoError(t, err)
	assert.Zero(t, data.ProtectedID)

	a := data.Article()
	assert.Zero(t, a.ID)
	assert.Equal(t, "Robotics Club Takes Second", a.Title)
	assert.Equal(t, model.CategoryAcademics, a.Category)
	assert.Equal(t, "Line one\nLine two", a.Content)
	assert.Equal(t, "", a.ImageURL)
	assert.True(t, a.Featured)
	assert.True(t, a.Date.IsZero())
}

func TestBindPatchKeepsAbsentFields(t *testing.T) {
	data, err := bind(t, `{"featured": false, "date": "2025-10-02"}`)
	require.NoError(t, err)

	p := data.Patch()
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Category)
	require.NotNil(t, p.Featured)
	assert.False(t, *p.Featured)
	require.NotNil(t, p.Date)
	assert.Equal(t, "2025-10-02", p.Date.String())
}

func TestBindEmptyDateIsNotAPatch(t *testing.T) {
	data, err := bind(t, `{"title": "x", "date": ""}`)
	require.NoError(t, err)
	assert.Nil(t, data.Patch().Date)
}

func TestBindErrors(t *testing.T) {
	_, err := bind(t, `{}`)
	assert.Error(t, err)

	_, err = bind(t, `{"category": "gossip"}`)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	_, err = bind(t, `{"date": "yesterday"}`)
	assert.Error(t, err)
}

func TestBindEmptyPatch(t *testing.T) {
	data, err := bindInto(t, NewPatchRequest(), `{}`)
	require.NoError(t, err)

	a := model.Article{ID: 3, Title: "Fall Dance", Category: model.CategoryEvents}
	assert.Equal(t, a, data.Patch().Apply(a))

	_, err = bindInto(t, NewPatchRequest(), `{"category": "gossip"}`)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}
