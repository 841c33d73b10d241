package main

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/config"
	"github.com/mager/songstory/dataset"
	"github.com/mager/songstory/handler/artists"
	"github.com/mager/songstory/handler/chart"
	"github.com/mager/songstory/handler/correlations"
	"github.com/mager/songstory/handler/health"
	"github.com/mager/songstory/handler/live"
	"github.com/mager/songstory/handler/page"
	"github.com/mager/songstory/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(
			appOptions(overrides(cmd)),
			fx.WithLogger(func(log *zap.SugaredLogger) fxevent.Logger {
				return &fxevent.ZapLogger{Logger: log.Desugar()}
			}),
		).Run()
	},
}

func init() {
	serveCmd.Flags().String("host", "", "interface to listen on (default $SONGSTORY_HOST)")
	serveCmd.Flags().Int("port", 0, "port to listen on (default $SONGSTORY_PORT or 8050)")
	serveCmd.Flags().Bool("debug", false, "log at debug level")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

// overrides returns a config decorator applying the flags set on cmd.
func overrides(cmd *cobra.Command) func(config.Config) config.Config {
	return func(cfg config.Config) config.Config {
		flags := cmd.Flags()
		if flags.Changed("host") {
			cfg.Host, _ = flags.GetString("host")
		}
		if flags.Changed("port") {
			cfg.Port, _ = flags.GetInt("port")
		}
		if flags.Changed("debug") {
			cfg.Debug, _ = flags.GetBool("debug")
		}
		if f := cmd.Flag("dataset"); f != nil && f.Changed {
			cfg.DatasetPath = f.Value.String()
		}
		return cfg
	}
}

func appOptions(override func(config.Config) config.Config) fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				NewHTTPServer,
				fx.ParamTags(``, ``, ``, `group:"routes"`),
			),
			config.Options,
			logger.Options,
			dataset.Options,
			charts.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(page.NewPageHandler),
			AsRoute(chart.NewFigureHandler),
			AsRoute(chart.NewSVGHandler),
			AsRoute(artists.NewArtistsHandler),
			AsRoute(correlations.NewComputedHandler),
			AsRoute(live.NewLiveHandler),
		),
		fx.Decorate(override),
		fx.Invoke(func(*http.Server) {}),
	)
}

func NewHTTPServer(lc fx.Lifecycle, cfg config.Config, logger *zap.SugaredLogger, routes []Route) *http.Server {
	router := mux.NewRouter()
	router.Use(logMiddleware(logger))

	for _, route := range routes {
		router.Handle(route.Pattern(), route)
	}
	router.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))),
	)

	srv := &http.Server{Addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), Handler: router}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Infow("Starting HTTP server", "addr", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func logMiddleware(logger *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debugw("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
			next.ServeHTTP(w, r)
		})
	}
}
