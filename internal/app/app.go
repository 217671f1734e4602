package app

import (
	"context"
	"errors"
	"net/http"

	http_server "github.com/dayanaadylkhanova/pageviews/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/pageviews/internal/service"
	"github.com/dayanaadylkhanova/pageviews/pkg/config"
	"github.com/dayanaadylkhanova/pageviews/pkg/pageviews"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	client *pageviews.Client
	stats  *service.Stats
	server *http_server.Server
}

func New(cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Upstream API client
	client := NewClient(cfg, log)

	// 2) Stats service
	stats := service.NewStats(log, client, cfg.MaxRangeDays)

	// 3) HTTP server
	srv := http_server.NewServer(log, cfg.ListenAddr, stats)

	return &App{
		cfg:    cfg,
		info:   info,
		log:    log,
		client: client,
		stats:  stats,
		server: srv,
	}, nil
}

// NewClient builds the pageviews client from config.
func NewClient(cfg config.Config, log *zap.Logger) *pageviews.Client {
	return pageviews.New(
		pageviews.WithEndpoints(pageviews.EndpointsFor(cfg.APIURL)),
		pageviews.WithParallelism(cfg.Parallelism),
		pageviews.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		pageviews.WithUserAgent(cfg.UserAgent),
		pageviews.WithLogger(log.Named("pageviews")),
	)
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("pageviews client",
		zap.String("api", a.cfg.APIURL),
		zap.Int("parallelism", a.client.Parallelism()),
	)

	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server", zap.Error(err))
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if err := a.server.Shutdown(shutdownCtx); err != nil && runErr == ErrAppShutdownNormal {
		a.log.Warn("http shutdown", zap.Error(err))
		runErr = ErrAppShutdownWithError
	}

	return runErr
}
