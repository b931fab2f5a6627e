package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"github.com/gorilla/sessions"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MrLamegame/Anderson-CVI-News/internal/admin"
	"github.com/MrLamegame/Anderson-CVI-News/internal/article"
	"github.com/MrLamegame/Anderson-CVI-News/internal/auth"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/metrics"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the routes are built from.
type Deps struct {
	Logger      *zap.SugaredLogger
	Articles    *article.Store
	Users       *user.Store
	Sessions    sessions.Store
	SessionName string
	Metrics     *metrics.Instruments
}

// NewRouter builds the public router.
func NewRouter(d Deps) chi.Router {
	articles := article.NewAPI(d.Articles, d.Metrics)
	cookies := session.NewCookies(d.Sessions, d.SessionName, d.Users)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(d.Logger))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(cookies.Middleware)

	r.Get("/", articles.Home)
	r.Get("/home", articles.Home)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Debugw("ping")
		if _, err := w.Write([]byte("pong")); err != nil {
			logging.FromContext(r.Context()).Errorw("write ping", "error", err)
		}
	})

	r.Mount("/articles", articles.Routes())
	auth.NewAPI(d.Users, d.Metrics).Mount(r)

	// Mount the admin sub-router, which is the same as:
	// r.Route("/admin", func(r chi.Router) { admin routes here })
	r.Mount("/admin", admin.Router(articles, d.Users))

	return r
}

// NewDiagRouter serves the Prometheus exporter.
func NewDiagRouter(exporter *prometheus.Exporter) chi.Router {
	r := chi.NewRouter()
	r.Get("/metrics", exporter.ServeHTTP)

	return r
}

// RoutesDoc renders Markdown documentation for r.
func RoutesDoc(r chi.Router) string {
	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/MrLamegame/Anderson-CVI-News",
		Intro:       "Routes of the Anderson CVI News site.",
	})
}

// Run serves handler on addr and diag on diagAddr until ctx is done, then
// shuts both down gracefully.
func Run(ctx context.Context, logger *zap.SugaredLogger, addr string, handler http.Handler, diagAddr string, diag http.Handler) error {
	servers := []*http.Server{
		{Addr: addr, Handler: handler},
		{Addr: diagAddr, Handler: diag},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Infow("serving", "addr", srv.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Infow("shutting down")

		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(timeoutCtx); err != nil {
				logger.Warnw("server did not shut down gracefully", "addr", srv.Addr, "error", err)
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return g.Wait()
}
