package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/adapter/cloudinary"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/handler/http"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/logger"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/postgres"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/prometheus"
	"github.com/sm8ta/webike_theft_registry/internal/adapter/redis"
	"github.com/sm8ta/webike_theft_registry/internal/config"
	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"
	"github.com/sm8ta/webike_theft_registry/internal/core/services"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

type App struct {
	Config       *config.Container
	Logger       *logger.LoggerAdapter
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router
	server       *nethttp.Server
}

// NewLogger builds the application logger from the config.
func NewLogger(cfg *config.Container) *logger.LoggerAdapter {
	return logger.NewLoggerAdapter(cfg.App.Env, cfg.App.LogLevel)
}

// OpenDB connects to postgres and checks the connection.
func OpenDB(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// ConnectRedis opens the cache connection and checks it.
func ConnectRedis(ctx context.Context, cfg *config.Redis) (*redisClient.Client, error) {
	conn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := conn.Ping(ctx).Result(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return conn, nil
}

// Migrate runs a goose command (up, down, status) against the database.
func Migrate(db *sql.DB, dir, command string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	}
	return fmt.Errorf("unknown migrate command %q", command)
}

// NewAchievementService wires the achievement service on its own, for the
// seed command.
func NewAchievementService(db *sql.DB, cache ports.CachePort, log ports.LoggerPort, cfg *config.Container) *services.AchievementService {
	return services.NewAchievementService(
		postgres.NewBadgeRepository(db),
		postgres.NewAchievementRepository(db),
		postgres.NewBikeRepository(db),
		postgres.NewReportRepository(db),
		log,
		domain.NewValidator(),
		cache,
		cfg.Cache.BadgeTTL,
	)
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := NewLogger(cfg)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn, err := ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	db, err := OpenDB(ctx, cfg.DB)
	if err != nil {
		redisConn.Close()
		return nil, err
	}

	// Migrate DB
	if err := Migrate(db, cfg.DB.MigrationsDir, "up"); err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := domain.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(nil)

	// Image storage is optional
	var storage ports.ImageStoragePort
	if cfg.Cloudinary.Enabled() {
		cld, err := cloudinary.NewCloudinaryAdapter(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			db.Close()
			redisConn.Close()
			return nil, err
		}
		storage = cld
	} else {
		loggerAdapter.Warn("Cloudinary is not configured, image uploads are disabled", nil)
	}

	// Repositories
	bikeRepo := postgres.NewBikeRepository(db)
	imageRepo := postgres.NewImageRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	badgeRepo := postgres.NewBadgeRepository(db)
	achievementRepo := postgres.NewAchievementRepository(db)
	searchRepo := postgres.NewSearchRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	alertService := services.NewAlertService(alertRepo, loggerAdapter, validate)
	bikeService := services.NewBikeService(bikeRepo, imageRepo, storage, loggerAdapter, validate, cacheAdapter, cfg.Cache.BikeTTL)
	reportService := services.NewReportService(reportRepo, userRepo, alertService, loggerAdapter, validate, cacheAdapter)
	searchService := services.NewSearchService(searchRepo, loggerAdapter)
	achievementService := services.NewAchievementService(badgeRepo, achievementRepo, bikeRepo, reportRepo, loggerAdapter, validate, cacheAdapter, cfg.Cache.BadgeTTL)
	profileService := services.NewProfileService(userRepo, bikeRepo, reportRepo, loggerAdapter, validate, cacheAdapter, cfg.Cache.UserTTL)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	handlers := http.Handlers{
		Bike:        http.NewBikeHandler(bikeService, loggerAdapter, metrics),
		Report:      http.NewReportHandler(reportService, loggerAdapter, metrics),
		Alert:       http.NewAlertHandler(alertService, loggerAdapter, metrics),
		Search:      http.NewSearchHandler(searchService, loggerAdapter, metrics),
		Achievement: http.NewAchievementHandler(achievementService, loggerAdapter, metrics),
		Profile:     http.NewProfileHandler(profileService, loggerAdapter, metrics),
	}

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		profileService,
		http.NewIPRateLimiter(cfg.Search.RateRPS, cfg.Search.RateBurst),
		loggerAdapter,
		handlers,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
		server: &nethttp.Server{
			Addr:         cfg.HTTP.Addr(),
			Handler:      router.Engine(),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}, nil
}

// Run serves HTTP until Stop is called.
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stop drains in-flight requests and closes all connections.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	var shutdownErr error
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		shutdownErr = err
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	_ = a.Logger.Sync()
	return shutdownErr
}
