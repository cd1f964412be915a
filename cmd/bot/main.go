package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/enhancement-calculator/internal/config"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/middleware"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/routers"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/handlers/api"
	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
	"github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections"
	"github.com/KirkDiggler/enhancement-calculator/internal/services"
	"github.com/KirkDiggler/enhancement-calculator/internal/uuid"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("No .env file found")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Calculator stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	rules, err := loadRules(cfg.Rules.File)
	if err != nil {
		return err
	}
	if !rules.Has(rulebook.Variant(cfg.Rules.DefaultVariant)) {
		return errors.New("DEFAULT_VARIANT " + cfg.Rules.DefaultVariant + " is not in the rules catalog")
	}

	providerConfig := &services.ProviderConfig{
		Rules:          rules,
		DefaultVariant: rulebook.Variant(cfg.Rules.DefaultVariant),
		UUIDGenerator:  uuid.NewGoogleUUIDGenerator(),
		Logger:         logger,
		SelectionRepository: selections.NewInMemoryRepository(&selections.InMemoryConfig{
			TTL: cfg.Redis.SessionTTL,
		}),
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Error closing Redis connection", zap.Error(err))
			}
		}()
		providerConfig.SelectionRepository = selections.NewRedisRepository(&selections.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Redis.SessionTTL,
		})
		logger.Info("Using Redis for calculator sessions")
	}

	serviceProvider := services.NewProvider(providerConfig)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Discord.Enabled() {
		g.Go(func() error {
			return runDiscord(gctx, cfg.Discord, serviceProvider, redisClient, logger)
		})
	}
	if cfg.HTTP.Enabled() {
		g.Go(func() error {
			return runHTTP(gctx, cfg.HTTP, serviceProvider, logger)
		})
	}

	return g.Wait()
}

func loadRules(path string) (*rulebook.Registry, error) {
	if path == "" {
		return rulebook.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return rulebook.Load(f)
}

// connectRedis returns nil when no URL is set or Redis is unreachable
func connectRedis(url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Info("No REDIS_URL found, using in-memory sessions")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("Failed to parse Redis URL, falling back to in-memory sessions", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Failed to connect to Redis, falling back to in-memory sessions", zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", opts.Addr))
	return client
}

func runDiscord(ctx context.Context, cfg config.DiscordConfig, provider *services.Provider, redisClient *redis.Client, logger *zap.Logger) error {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return err
	}

	pipeline := core.NewPipeline(logger)
	pipeline.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.ErrorMiddleware(logger),
	)
	if cfg.RateLimit > 0 {
		var store middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
		if redisClient != nil {
			store = middleware.NewRedisRateLimitStore(redisClient)
		}
		pipeline.Use(middleware.UserRateLimitMiddleware(cfg.RateLimit, cfg.RateLimitWindow, store))
	}
	pipeline.Use(middleware.DeferMiddleware(&middleware.DeferConfig{Logger: logger}))

	if _, err := routers.NewEnhanceRouter(&routers.EnhanceRouterConfig{
		Pipeline: pipeline,
		Provider: provider,
	}); err != nil {
		return err
	}

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := pipeline.Execute(ctx, s, i); err != nil {
			logger.Debug("Interaction not handled", zap.Error(err))
		}
	})

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		return err
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("Failed to close Discord connection", zap.Error(err))
		}
	}()

	// Empty guild ID registers a global command
	if _, err := dg.ApplicationCommandCreate(cfg.AppID, cfg.GuildID, routers.EnhanceCommand(provider)); err != nil {
		return err
	}

	if cfg.GuildID != "" {
		logger.Info("Registered commands for guild", zap.String("guild_id", cfg.GuildID))
	} else {
		logger.Info("Registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info("Bot is now running", zap.String("app_id", cfg.AppID))
	<-ctx.Done()
	logger.Info("Shutting down Discord session")

	return nil
}

func runHTTP(ctx context.Context, cfg config.HTTPConfig, provider *services.Provider, logger *zap.Logger) error {
	server := api.NewServer(&api.ServerConfig{
		Service:        provider.CalculatorService,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP API")
	return srv.Shutdown(shutdownCtx)
}
