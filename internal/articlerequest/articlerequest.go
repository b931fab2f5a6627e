package articlerequest

import (
	"errors"
	"net/http"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
)

// ArticleRequest is the request payload for Article data model, used both to
// publish and to edit. Fields left out of the body stay nil, so on edit they
// keep their stored value.
type ArticleRequest struct {
	Title    *string     `json:"title"`
	Category *string     `json:"category"`
	Author   *string     `json:"author"`
	Date     *model.Date `json:"date"`
	Excerpt  *string     `json:"excerpt"`
	Content  *string     `json:"content"`
	ImageURL *string     `json:"imageUrl"`
	Featured *bool       `json:"featured"`

	ProtectedID int `json:"id"` // override 'id' json to have more control

	category *model.Category
	patch    bool
}

// NewPatchRequest returns a request for editing. An empty body is a valid
// edit that changes nothing.
func NewPatchRequest() *ArticleRequest {
	return &ArticleRequest{patch: true}
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	if !a.patch && a.Title == nil && a.Category == nil && a.Author == nil && a.Date == nil &&
		a.Excerpt == nil && a.Content == nil && a.ImageURL == nil && a.Featured == nil {
		return errors.New("missing required Article fields.")
	}

	// ids are assigned by the store only
	a.ProtectedID = 0

	if a.Category != nil {
		c, err := model.ParseCategory(*a.Category)
		if err != nil {
			return err
		}
		a.category = &c
	}

	return nil
}

// Article returns the article to publish. Absent fields are empty.
func (a *ArticleRequest) Article() model.Article {
	return a.Patch().Apply(model.Article{})
}

// Patch returns the fields present in the request.
func (a *ArticleRequest) Patch() model.ArticlePatch {
	p := model.ArticlePatch{
		Title:    a.Title,
		Category: a.category,
		Author:   a.Author,
		Excerpt:  a.Excerpt,
		Content:  a.Content,
		ImageURL: a.ImageURL,
		Featured: a.Featured,
	}
	if a.Date != nil && !a.Date.IsZero() {
		p.Date = a.Date
	}

	return p
}
