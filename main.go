package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/middleware"

	"github.com/tableside/foh/internal/console"
	"github.com/tableside/foh/internal/posapi"
)

const (
	appNamespace = "FOH"
	appName      = "foh"
	appVersion   = "0.1.0"
)

const (
	defaultDashboardRefresh = 3 * time.Second
	defaultTablesRefresh    = 5 * time.Second
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	posURL, _ := config.GetString("services.pos.url")
	client := posapi.NewHTTPClient(posURL)

	cache := console.NewSnapshotCache(client, logger)

	handler, err := console.NewHandler(client, cache, logger)
	if err != nil {
		log.Fatalf("%s(%s) cannot build console handler: %v", appName, appVersion, err)
	}

	dashboardRefresh := refreshInterval(config, "refresh.dashboard", defaultDashboardRefresh)
	tablesRefresh := refreshInterval(config, "refresh.tables", defaultTablesRefresh)

	dashboardLoop := console.NewRefresher("dashboard", dashboardRefresh, cache.RefreshDashboard, logger)
	tablesLoop := console.NewRefresher("tables", tablesRefresh, cache.RefreshTables, logger)

	refreshHooks := apt.LifecycleHooks{
		OnStart: func(ctx context.Context) error {
			dashboardLoop.Start(ctx)
			tablesLoop.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			dashboardLoop.Stop()
			tablesLoop.Stop()
			return nil
		},
	}

	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: logger,
	})

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", handler),
		apt.WithLifecycle(refreshHooks),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}

func refreshInterval(config *apt.Config, key string, def time.Duration) time.Duration {
	raw, ok := config.GetString(key)
	if !ok || raw == "" {
		return def
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
