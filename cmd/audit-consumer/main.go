// Command audit-consumer drains the movies.queried queue into a log file.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iliyamo/movie-query-api/internal/config"
	"github.com/iliyamo/movie-query-api/internal/logger"
	"github.com/iliyamo/movie-query-api/internal/queue"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	auditCfg := config.LoadAuditConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.Consumer{
		URL:    auditCfg.URL,
		Queue:  auditCfg.Queue,
		LogDir: auditCfg.LogDir,
		Log:    log,
	}
	log.Info().Str("queue", c.Queue).Str("dir", c.LogDir).Msg("audit consumer starting")
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("audit consumer stopped")
	}
	log.Info().Msg("audit consumer stopped")
}
