package website

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/altheman/website/core"
	"github.com/gin-gonic/gin"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// App is a fully wired site, ready to serve.
type App struct {
	Config core.Config
	Logger *slog.Logger
	Store  *core.TemplateStore
	Router *core.Router

	reloader core.LiveReloaderInterface
}

var Listen = net.Listen

// Build resolves the log level, loads the templates and wires the router.
// Template loading errors are fatal.
func Build(cfg core.Config, logOut io.Writer) (*App, error) {
	level, err := core.ResolveLogLevel(cfg.LogLevel, os.Getenv)
	if err != nil {
		return nil, err
	}
	logger := core.NewLogger(logOut, level, cfg.Env)

	store, err := core.LoadTemplates(cfg.TemplatesDir, logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	rt := core.RuntimeContext{Env: cfg.Env}
	if cfg.IsDev() {
		rt.Reloader = core.NewLiveReloader()
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Router:   core.NewRouter(cfg, store, logger, rt),
		reloader: rt.Reloader,
	}, nil
}

func (a *App) Addr() string {
	return a.Config.Addr()
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := Listen("tcp", a.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(a.Logger.Handler(), slog.LevelError),
	}

	if a.reloader != nil {
		go func() {
			if err := core.WatchFile(ctx, a.Config.AssetPath, a.Logger, a.reloader.BroadcastReload); err != nil {
				a.Logger.Warn("live reload disabled", "err", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	a.Logger.Info("server started", "addr", ln.Addr().String(), "env", a.Config.Env)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Start builds the site from cfg and serves it until SIGINT or SIGTERM.
var Start = func(cfg core.Config) error {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := Build(cfg, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("✅ Site running at http://%s\n", app.Addr())
	return app.Run(ctx)
}
