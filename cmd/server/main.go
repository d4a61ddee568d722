package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-query-api/internal/config"
	"github.com/iliyamo/movie-query-api/internal/database"
	"github.com/iliyamo/movie-query-api/internal/handler"
	"github.com/iliyamo/movie-query-api/internal/logger"
	"github.com/iliyamo/movie-query-api/internal/metrics"
	"github.com/iliyamo/movie-query-api/internal/middleware"
	"github.com/iliyamo/movie-query-api/internal/repository"
	"github.com/iliyamo/movie-query-api/internal/router"
	queue_publisher "github.com/iliyamo/movie-query-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store unavailable")
	}
	defer closeStore()

	var rdb *redis.Client
	if client, err := config.NewRedisClient(ctx, config.LoadRedisConfig()); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, response cache and rate limiting disabled")
	} else {
		rdb = client
		defer rdb.Close()
	}

	movieMW := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	}
	auditCfg := config.LoadAuditConfig()
	if auditCfg.Enabled {
		pub := queue_publisher.New(auditCfg.URL, auditCfg.Queue)
		defer pub.Close()
		movieMW = append(movieMW, middleware.Audit(pub))
		log.Info().Str("queue", auditCfg.Queue).Msg("query audit enabled")
	}
	movieMW = append(movieMW, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(logger.RequestLogger(log))
	e.Use(metrics.Middleware())

	router.RegisterRoutes(e)
	router.RegisterMovies(e, handler.NewMovieHandler(metrics.NewInstrumentedStore(store)), movieMW...)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("driver", cfg.StoreDriver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore connects the configured backend and returns the store with a
// cleanup func for its connection.
func openStore(ctx context.Context, cfg config.Config) (repository.MovieStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := database.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		return repository.NewMongoMovieRepo(coll), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("could not ensure movies schema")
		}
		return repository.NewMovieRepo(db), func() { _ = db.Close() }, nil
	}
}
