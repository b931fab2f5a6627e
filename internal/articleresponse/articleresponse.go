package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
	"github.com/MrLamegame/Anderson-CVI-News/internal/view"
)

// ArticleResponse is the response payload for the Article data model, with
// the display fields the front end needs already derived.
type ArticleResponse struct {
	*model.Article

	Badge       string   `json:"badge"`
	DisplayDate string   `json:"displayDate"`
	Paragraphs  []string `json:"paragraphs,omitempty"`
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{
		Article:     article,
		Badge:       view.Badge(article.Category),
		DisplayDate: view.FormatDisplayDate(article.Date),
	}
}

// NewArticleDetailResponse also splits the content into paragraphs.
func NewArticleDetailResponse(article *model.Article) *ArticleResponse {
	resp := NewArticleResponse(article)
	resp.Paragraphs = view.Paragraphs(article.Content)

	return resp
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := []render.Renderer{}
	for i := range articles {
		list = append(list, NewArticleResponse(&articles[i]))
	}

	return list
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticlePageResponse is a single article together with its related articles.
type ArticlePageResponse struct {
	Article *ArticleResponse  `json:"article"`
	Related []render.Renderer `json:"related"`

	EmptyText string `json:"emptyText,omitempty"` // shown instead of an empty related list
}

func NewArticlePageResponse(article model.Article, related []model.Article) *ArticlePageResponse {
	resp := &ArticlePageResponse{
		Article: NewArticleDetailResponse(&article),
		Related: NewArticleListResponse(related),
	}
	if len(related) == 0 {
		resp.EmptyText = notice.NoRelatedArticles
	}

	return resp
}

func (rd *ArticlePageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// CategoryPageResponse lists the articles of one category, or all of them.
type CategoryPageResponse struct {
	Category    model.Category    `json:"category,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Articles    []render.Renderer `json:"articles"`
	EmptyText   string            `json:"emptyText,omitempty"`
}

func NewCategoryPageResponse(c model.Category, articles []model.Article) *CategoryPageResponse {
	title, description := view.CategoryHeading(c)
	resp := &CategoryPageResponse{
		Category:    c,
		Title:       title,
		Description: description,
		Articles:    NewArticleListResponse(articles),
	}
	if len(articles) == 0 {
		resp.EmptyText = notice.NoCategoryArticles
	}

	return resp
}

func (rd *CategoryPageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// HomeResponse is the front page: featured and latest articles plus the
// visitor's account menu.
type HomeResponse struct {
	Featured []render.Renderer `json:"featured"`
	Latest   []render.Renderer `json:"latest"`
	Account  view.AccountMenu  `json:"account"`
}

func NewHomeResponse(featured, latest []model.Article, account view.AccountMenu) *HomeResponse {
	return &HomeResponse{
		Featured: NewArticleListResponse(featured),
		Latest:   NewArticleListResponse(latest),
		Account:  account,
	}
}

func (rd *HomeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// MutationResponse acknowledges an admin change to an article.
type MutationResponse struct {
	Article *ArticleResponse `json:"article,omitempty"`
	Notice  *notice.Notice   `json:"notice"`
}

func NewMutationResponse(article *model.Article, n *notice.Notice) *MutationResponse {
	resp := &MutationResponse{Notice: n}
	if article != nil {
		resp.Article = NewArticleResponse(article)
	}

	return resp
}

func (rd *MutationResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
