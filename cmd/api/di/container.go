package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow/cmd/api/infrastructure"
	"taskflow/internal/adapter/cache"
	"taskflow/internal/adapter/db/postgres"
	ginhandler "taskflow/internal/adapter/gin/handler"
	ginmiddleware "taskflow/internal/adapter/gin/middleware"
	"taskflow/internal/adapter/repository/cached"
	"taskflow/internal/config"
	"taskflow/internal/usecase/auth"
	"taskflow/internal/usecase/task"
	redisclient "taskflow/pkg/redis"
	"taskflow/pkg/security"
	"taskflow/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Tokens      *token.Manager
	AuthUC      auth.Usecase
	TaskUC      task.Usecase
	RateLimiter *ginmiddleware.RateLimiter
	AuthHandler *ginhandler.AuthHandler
	TaskHandler *ginhandler.TaskHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.AutoMigrate(&postgres.UserSchema{}, &postgres.TaskSchema{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	userCache := cache.NewRedisUserCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)

	userRepo := cached.NewUserRepository(postgres.NewUserRepoPG(db, l), userCache, l)
	taskRepo := postgres.NewTaskRepoPG(db, l)

	tokens := token.NewManager(
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	hasher := security.NewHasher(cfg.Auth.BcryptCost)

	authUC := auth.New(userRepo, hasher, tokens, l)
	taskUC := task.New(taskRepo, l)

	rateLimiter := ginmiddleware.NewRateLimiter(
		rdb.Client,
		ginmiddleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			WindowSeconds:     cfg.RateLimit.WindowSeconds,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Tokens:      tokens,
		AuthUC:      authUC,
		TaskUC:      taskUC,
		RateLimiter: rateLimiter,
		AuthHandler: ginhandler.NewAuthHandler(authUC, l),
		TaskHandler: ginhandler.NewTaskHandler(taskUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
