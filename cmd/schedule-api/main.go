package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-schedule-api/api/swagger"
	"github.com/noah-isme/sma-schedule-api/internal/handler"
	internalmiddleware "github.com/noah-isme/sma-schedule-api/internal/middleware"
	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/internal/repository"
	"github.com/noah-isme/sma-schedule-api/internal/service"
	"github.com/noah-isme/sma-schedule-api/pkg/cache"
	"github.com/noah-isme/sma-schedule-api/pkg/config"
	"github.com/noah-isme/sma-schedule-api/pkg/database"
	"github.com/noah-isme/sma-schedule-api/pkg/jobs"
	"github.com/noah-isme/sma-schedule-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-schedule-api/pkg/middleware/cors"
	"github.com/noah-isme/sma-schedule-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/noah-isme/sma-schedule-api/pkg/middleware/requestid"
)

// @title SMA Schedule API
// @version 1.0.0
// @description Searchable, filterable and paginated class schedules with interactive query views.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type scheduleSource interface {
	ListEntries(ctx context.Context) ([]models.ScheduleEntry, error)
	ListTeacherEntries(ctx context.Context, teacherID string) ([]models.TeacherScheduleEntry, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]handler.ReadinessCheck{}

	source, closeSource, err := openSource(ctx, cfg, logr, checks)
	if err != nil {
		logr.Fatal("failed to open schedule source", zap.Error(err))
	}
	defer closeSource()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, schedule cache disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(client, "schedule-api", logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
			checks["redis"] = redisCheck(client)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cacheRepo != nil)

	sourceSvc := service.NewScheduleSourceService(source, cacheSvc, metricsSvc, cfg.Cache.TTL, logr)
	exportSvc := service.NewExportService(nil, nil, logr)
	querySvc := service.NewScheduleQueryService(sourceSvc, exportSvc, metricsSvc, service.ScheduleQueryConfig{
		DefaultPageSize: cfg.Schedules.DefaultPageSize,
		MaxPageSize:     cfg.Schedules.MaxPageSize,
	}, logr)
	viewSvc := service.NewQueryViewService(sourceSvc, sourceSvc, metricsSvc, service.QueryViewConfig{
		DefaultPageSize: cfg.Schedules.DefaultPageSize,
		MaxPageSize:     cfg.Schedules.MaxPageSize,
		IdleTTL:         cfg.Views.IdleTTL,
		MaxViews:        cfg.Views.MaxViews,
	}, logr)
	sessionSvc := service.NewSessionService(service.SessionConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}, logr)

	sweeper := jobs.NewPeriodic("query-view-eviction", viewSvc.EvictExpired, jobs.PeriodicConfig{
		Interval: evictionInterval(cfg.Views.IdleTTL),
		Logger:   logr,
	})
	sweeper.Start(ctx)
	defer sweeper.Stop()

	validate := validator.New()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(corsmiddleware.DefaultOptions(cfg.CORS.AllowedOrigins)))
	r.Use(internalmiddleware.Metrics(metricsSvc, "/metrics", "/health", "/ready"))

	deps := handler.RouterDeps{
		Schedules: handler.NewScheduleHandler(querySvc),
		Views:     handler.NewQueryViewHandler(viewSvc, validate),
		Metrics:   handler.NewMetricsHandler(metricsSvc, checks),
		Session:   internalmiddleware.Session(sessionSvc),
	}
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL, logr)
		pruner := jobs.NewPeriodic("rate-limit-prune", limiter.Prune, jobs.PeriodicConfig{
			Interval: evictionInterval(cfg.RateLimit.IdleTTL),
			Logger:   logr,
		})
		pruner.Start(ctx)
		defer pruner.Stop()
		deps.RateLimit = limiter.Middleware()
	}
	handler.RegisterRoutes(r, cfg.APIPrefix, deps)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "source", cfg.Schedules.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openSource(ctx context.Context, cfg *config.Config, logr *zap.Logger, checks map[string]handler.ReadinessCheck) (scheduleSource, func(), error) {
	switch cfg.Schedules.Source {
	case config.SourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		checks["postgres"] = db.PingContext
		return repository.NewScheduleRepository(db), func() { _ = db.Close() }, nil
	case config.SourceFixture, "":
		set := repository.DefaultScheduleFixtures()
		if cfg.Schedules.FixtureFile != "" {
			loaded, err := repository.LoadScheduleFixtures(cfg.Schedules.FixtureFile)
			if err != nil {
				return nil, nil, err
			}
			set = loaded
		}
		return repository.NewScheduleFixtureRepository(set, logr), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown schedule source %q", cfg.Schedules.Source)
	}
}

func redisCheck(client *redis.Client) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func evictionInterval(idle time.Duration) time.Duration {
	interval := idle / 4
	if interval < 10*time.Second {
		return 10 * time.Second
	}
	if interval > 5*time.Minute {
		return 5 * time.Minute
	}
	return interval
}
