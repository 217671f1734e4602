package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dayanaadylkhanova/pageviews/internal/app"
	"github.com/dayanaadylkhanova/pageviews/pkg/config"
	"github.com/dayanaadylkhanova/pageviews/pkg/logger"
	"go.uber.org/zap"
)

var (
	AppName      = "pageviews-api"
	AppBuildTime = "dev"
	AppCommit    = "dev"
	AppRelease   = "dev"
)

func main() {
	// 1) Config
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("can't parse app config: %v", err)
	}
	if cfg.MaxCPU > 0 {
		runtime.GOMAXPROCS(cfg.MaxCPU)
	}

	info := &app.AppInfo{
		Name:      AppName,
		BuildTime: AppBuildTime,
		Commit:    AppCommit,
		Release:   AppRelease,
	}

	// 2) Logger
	zl := logger.NewJSON(cfg.LogLevel).With(zap.String("app", AppName), zap.String("release", AppRelease))
	defer func() {
		if r := recover(); r != nil {
			zl.Error("panic error", zap.Error(fmt.Errorf("%v", r)))
		}
		_ = zl.Sync()
	}()
	zap.ReplaceGlobals(zl)
	zl.Info(fmt.Sprintf("Application `%s` %s started.", AppName, AppRelease), zap.String("commit", AppCommit))

	// 3) Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4) Run
	application, err := app.New(*cfg, info, zl)
	if err != nil {
		zl.Fatal("can't build app", zap.Error(err))
	}
	if err := application.Run(ctx); err != nil {
		switch {
		case errors.Is(err, app.ErrAppStartup):
			zl.Error("can't run application", zap.Error(err))
		case errors.Is(err, app.ErrAppShutdownWithError):
			zl.Error("application is shutdown with error", zap.Error(err))
		default:
			zl.Warn("application is shutdown")
		}
	}

	time.Sleep(100 * time.Millisecond)
}
