package article

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MrLamegame/Anderson-CVI-News/internal/errresponse"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/model"
	"github.com/MrLamegame/Anderson-CVI-News/internal/notice"
)

type ctxKey struct{}

// ArticleCtx middleware is used to load an Article object from
// the URL parameters passed through as the request. In case
// the Article could not be found, we stop here and return a 404.
func (a *API) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := URLArticleID(r)
		if err != nil {
			respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleNotFound))

			return
		}

		article, err := a.store.Get(id)
		if err != nil {
			respond(w, r, errresponse.ErrNotFound.WithNotice(notice.ArticleNotFound))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the article loaded by ArticleCtx.
func FromContext(ctx context.Context) (model.Article, bool) {
	article, ok := ctx.Value(ctxKey{}).(model.Article)
	return article, ok
}

// URLArticleID parses the {articleID} route parameter.
func URLArticleID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "articleID"))
}

func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		logging.FromContext(r.Context()).Errorw("render response", "error", err)
	}
}
