package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/web-ghoul/Brainstorming-Server/internal/adapter"
	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	handler "github.com/web-ghoul/Brainstorming-Server/internal/handler/http"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/oauth"
	"github.com/web-ghoul/Brainstorming-Server/internal/ratelimit"
	"github.com/web-ghoul/Brainstorming-Server/internal/server"
	"github.com/web-ghoul/Brainstorming-Server/internal/service"
	"github.com/web-ghoul/Brainstorming-Server/internal/session"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
)

// memorySweepInterval is how often the in-memory session store and rate
// limiter drop expired entries when Redis is not configured.
const memorySweepInterval = time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("brainstorming-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewMongoDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(ctx); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database connection")
		}
	}()

	repos := store.NewRepositories(db)

	limiterCfg := ratelimit.Config{
		Window: cfg.RateLimit.Window,
		Max:    cfg.RateLimit.Max,
	}

	var sessions session.Store
	var limiter ratelimit.Limiter
	if cfg.Storage.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			log.Fatal().Err(pingErr).Msg("error connecting to redis")
		}

		sessions = session.NewRedisStore(client)
		limiter = ratelimit.NewRedisLimiter(client, limiterCfg)
		log.Info().Str("addr", cfg.Storage.Redis.Addr).Msg("using redis session store and rate limiter")
	} else {
		memSessions := session.NewMemoryStore()
		memLimiter := ratelimit.NewMemoryLimiter(limiterCfg)
		go memSessions.PurgeEvery(ctx, memorySweepInterval)
		go memLimiter.SweepEvery(ctx, memorySweepInterval)

		sessions = memSessions
		limiter = memLimiter
		log.Info().Msg("using in-memory session store and rate limiter")
	}

	uploader, err := adapter.NewImageHostUploader(cfg.ImageHost, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image uploader")
	}

	strategies, err := oauth.NewRegistry(ctx, cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating oauth strategies")
	}

	services := service.NewServices(&repos, cfg, log)

	h, err := handler.NewHandler(services, uploader, sessions, limiter, strategies, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http handler")
	}

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
