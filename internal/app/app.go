package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/auth"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/config"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/notification"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/repository"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/router"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/scheduler"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/session"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TravelApp",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if !a.cfg.Redis.Enabled() {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis address is empty, cookie sessions disabled")
		return nil
	}

	client := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err := client.Ping(context.Background()); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	listingRepo := repository.NewListingRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	// Both stay untyped nil without redis so the nil checks downstream hold.
	var (
		sessionStore    ports.SessionStore
		sessionResolver middleware.SessionResolver
	)
	if a.redis != nil {
		store := session.NewRedisStore(a.redis, a.cfg.Auth.SessionTTL)
		sessionStore, sessionResolver = store, store
	}

	listingService := service.NewListingService(listingRepo, a.log)
	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo, n, a.log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, listingRepo, a.log)
	userService := service.NewUserService(userRepo, tokens, sessionStore, a.log)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			bookingService,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(listingService, bookingService, reviewService, userService, handler.Options{
		CookieName:   a.cfg.Auth.CookieName,
		CookieTTL:    a.cfg.Auth.SessionTTL,
		CookieSecure: a.cfg.Auth.CookieSecure,
		MaxPageSize:  a.cfg.Pagination.MaxPageSize,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Authenticate(tokens, sessionResolver, a.cfg.Auth.CookieName, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "migrations applied successfully")
	return nil
}
