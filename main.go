//
// Anderson CVI News
// =================
// The school news site: public article pages, accounts and an admin panel
// for publishing, all served as JSON.
//
// Run `go run . routes` to print the generated route docs.
//
// Boot the server:
// ----------------
// $ go run .
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/ping
// pong
//
// $ curl http://localhost:3333/articles?cat=sports
// {"category":"sports","title":"Sports","description":"Browse articles in the sports category","articles":[...]}
//
// $ curl -c jar -H 'Content-Type: application/json' \
//     -d '{"email":"admin@andersoncvi.edu","password":"admin123"}' http://localhost:3333/login
// {"user":{...,"role":"Admin"},"redirect":"/admin","notice":{"type":"success","message":"Login successful!"}}
//
// $ curl -b jar -H 'Content-Type: application/json' \
//     -d '{"title":"Robotics Club Wins","category":"academics"}' http://localhost:3333/admin/articles
// {"article":{"id":4,...},"notice":{"type":"success","message":"Article published successfully!"}}
//
// $ curl http://localhost:9999/metrics
//
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MrLamegame/Anderson-CVI-News/internal/article"
	"github.com/MrLamegame/Anderson-CVI-News/internal/config"
	"github.com/MrLamegame/Anderson-CVI-News/internal/logging"
	"github.com/MrLamegame/Anderson-CVI-News/internal/metrics"
	"github.com/MrLamegame/Anderson-CVI-News/internal/server"
	"github.com/MrLamegame/Anderson-CVI-News/internal/session"
	"github.com/MrLamegame/Anderson-CVI-News/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	rootCommand := &cobra.Command{
		Use:          config.ServiceName,
		Short:        "Run the Anderson CVI News site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cfg.BindFlags(rootCommand.PersistentFlags())

	routesCommand := &cobra.Command{
		Use:   "routes",
		Short: "Print Markdown documentation of the HTTP routes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(server.RoutesDoc(newRouter(cfg, zap.NewNop().Sugar())))
		},
	}
	rootCommand.AddCommand(routesCommand)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync() // flushes buffer, if any

	exporter, err := metrics.NewExporter()
	if err != nil {
		logger.Errorw("failed to initialize prometheus exporter", "error", err)

		return err
	}

	if cfg.SessionSecret == "" {
		logger.Warnw("NEWS_SESSION_SECRET is not set; sessions will not survive a restart")
	}

	return server.Run(ctx, logger,
		cfg.Addr, newRouter(cfg, logger),
		cfg.DiagAddr, server.NewDiagRouter(exporter),
	)
}

func newRouter(cfg config.Config, logger *zap.SugaredLogger) chi.Router {
	return server.NewRouter(server.Deps{
		Logger:      logger,
		Articles:    article.NewStore(),
		Users:       user.NewStore(),
		Sessions:    session.NewCookieStore(cfg.SecretKey()),
		SessionName: cfg.SessionName,
		Metrics:     metrics.Global(config.ServiceName),
	})
}
