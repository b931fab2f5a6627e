package article

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/articlerequest"
	"github.com/MrLamegame/Anderson-CVI-News/internal/articleresponse"
	"github.com/MrLamegame/Anderson-CVI-News/internal/errresponse"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/metrics"
	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/view"
)

// API serves the article collection: public browsing and the admin editor.
type API struct {
	store   *Store
	metrics *metrics.Instruments
}

func NewAPI(store *Store, m *metrics.Instruments) *API {
	return &API{store: store, metrics: m}
}

// Routes are the public, read-only article routes.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", a.ListArticles)             // GET /articles?cat=sports
	r.Get("/featured", a.FeaturedArticles) // GET /articles/featured
	r.Get("/latest", a.LatestArticles)     // GET /articles/latest?n=6

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(a.ArticleCtx)      // Load the Article on the request context
		r.Get("/", a.GetArticle) // GET /articles/123
	})

	return r
}

// AdminRoutes edit the collection. Mount them behind the admin gate.
func (a *API) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", a.AllArticles)    // GET /admin/articles
	r.Post("/", a.CreateArticle) // POST /admin/articles

	r.Route("/{articleID}", func(r chi.Router) {
		r.With(a.ArticleCtx).Get("/", a.GetArticle)    // GET /admin/articles/123
		r.With(a.ArticleCtx).Put("/", a.UpdateArticle) // PUT /admin/articles/123
		r.Delete("/", a.DeleteArticle)                  // DELETE /admin/articles/123
	})

	return r
}

// Home renders the front page: featured articles, the latest ones and the
// visitor's account menu.
func (a *API) Home(w http.ResponseWriter, r *http.Request) {
	articles := a.store.List()

	var current *model.User
	if u, ok := session.FromContext(r.Context()).CurrentUser(); ok {
		current = &u
	}

	respond(w, r, articleresponse.NewHomeResponse(
		view.Featured(articles),
		view.Latest(articles, view.HomeLatestCount),
		view.Account(current),
	))
}

// ListArticles renders a category page, or every article when no category
// is asked for.
func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	if raw := r.URL.Query().Get("cat"); raw != "" {
		c, err := model.ParseCategory(raw)
		if err != nil {
			respond(w, r, errresponse.ErrNotFound.WithNotice(notice.NoCategoryArticles))

			return
		}
		category = c
	}

	respond(w, r, articleresponse.NewCategoryPageResponse(category, view.ByCategory(a.store.List(), category)))
}

func (a *API) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	a.renderList(w, r, view.Featured(a.store.List()))
}

func (a *API) LatestArticles(w http.ResponseWriter, r *http.Request) {
	n := view.HomeLatestCount
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond(w, r, errresponse.ErrInvalidRequest(err))

			return
		}
		n = parsed
	}

	a.renderList(w, r, view.Latest(a.store.List(), n))
}

// GetArticle returns the specific Article with up to three related articles
// from the same category.
func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := FromContext(r.Context())
	if !ok {
		respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleNotFound))

		return
	}

	related := view.Related(a.store.List(), article.Category, article.ID, view.RelatedLimit)
	respond(w, r, articleresponse.NewArticlePageResponse(article, related))
}

// AllArticles lists the collection in insertion order for the admin panel.
func (a *API) AllArticles(w http.ResponseWriter, r *http.Request) {
	a.renderList(w, r, a.store.List())
}

// CreateArticle publishes the posted Article and returns it
// back to the client as an acknowledgement.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &articlerequest.ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		logging.FromContext(r.Context()).Infow("rejected article", "error", err)
		respond(w, r, errresponse.ErrInvalidRequest(err).WithNotice(notice.ArticlePublishError))

		return
	}

	id := a.store.Create(data.Article())
	article, err := a.store.Get(id)
	if err != nil {
		respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticlePublishError))

		return
	}
	a.metrics.ArticlePublished(r.Context())
	logging.FromContext(r.Context()).Infow("article published", "id", id, "category", article.Category)

	render.Status(r, http.StatusCreated)
	respond(w, r, articleresponse.NewMutationResponse(&article, notice.Successf("%s", notice.ArticlePublished)))
}

// UpdateArticle merges the posted fields over an existing Article.
func (a *API) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	article, ok := FromContext(r.Context())
	if !ok {
		respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleNotFound))

		return
	}

	data := articlerequest.NewPatchRequest()
	if err := render.Bind(r, data); err != nil {
		respond(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	updated, err := a.store.Update(article.ID, data.Patch())
	if err != nil {
		respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleNotFound))

		return
	}
	a.metrics.ArticleUpdated(r.Context())

	respond(w, r, articleresponse.NewMutationResponse(&updated, notice.Successf("%s", notice.ArticleUpdated)))
}

// DeleteArticle removes an existing Article from the store.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := URLArticleID(r)
	if err != nil || !a.store.Delete(id) {
		respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleDeleteError))

		return
	}
	a.metrics.ArticleDeleted(r.Context())
	logging.FromContext(r.Context()).Infow("article deleted", "id", id)

	respond(w, r, articleresponse.NewMutationResponse(nil, notice.Successf("%s", notice.ArticleDeleted)))
}

func (a *API) renderList(w http.ResponseWriter, r *http.Request, articles []model.Article) {
	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		respond(w, r, errresponse.ErrRender(err))
	}
}
