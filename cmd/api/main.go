package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clement8426/trail-mosaic-sub000/internal/catalog"
	"github.com/clement8426/trail-mosaic-sub000/internal/config"
	"github.com/clement8426/trail-mosaic-sub000/internal/db"
	"github.com/clement8426/trail-mosaic-sub000/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig   func() config.Config
	loadCatalog  func(config.Config) *catalog.Catalog
	connectRedis func(config.Config) *redis.Client
	notify       func(chan<- os.Signal, ...os.Signal)
	run          func(context.Context, config.Config, *catalog.Catalog, *redis.Client, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:   config.Load,
		loadCatalog:  loadCatalog,
		connectRedis: db.ConnectRedis,
		notify:       signal.Notify,
		run:          Run,
	}
}

// loadCatalog seeds the catalog from Postgres when a URL is configured and
// falls back to the built-in fixtures otherwise.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.PostgresURL == "" {
		return catalog.Default()
	}

	pool, err := db.ConnectPostgres(cfg)
	if err != nil {
		log.Printf("postgres connection failed, using fixture catalog: %v", err)
		return catalog.Default()
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cat, err := catalog.Load(ctx, pool)
	if err != nil {
		log.Printf("catalog load failed, using fixture catalog: %v", err)
		return catalog.Default()
	}
	return cat
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	cat := deps.loadCatalog(cfg)
	rdb := deps.connectRedis(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, cat, rdb, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, cat *catalog.Catalog, rdb *redis.Client, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, cat, rdb)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(srv.App, shutdownCtx); err != nil {
		return err
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	return nil
}
