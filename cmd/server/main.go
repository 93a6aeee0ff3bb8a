package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vmaksimov/storefront/internal/config"
	"github.com/vmaksimov/storefront/internal/db"
	"github.com/vmaksimov/storefront/internal/es"
	"github.com/vmaksimov/storefront/internal/httpserver"
	"github.com/vmaksimov/storefront/internal/logging"
	"github.com/vmaksimov/storefront/internal/mail"
	"github.com/vmaksimov/storefront/internal/middleware/csrf"
	loggingmw "github.com/vmaksimov/storefront/internal/middleware/logging"
	"github.com/vmaksimov/storefront/internal/repo"
	"github.com/vmaksimov/storefront/internal/service/cart"
	"github.com/vmaksimov/storefront/internal/service/catalog"
	"github.com/vmaksimov/storefront/internal/service/order"
	"github.com/vmaksimov/storefront/internal/service/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	cfg.Require("DATABASE_URL", "JWT_SECRET", "REFRESH_SECRET", "KAFKA_ADDRESS")

	logger := logging.New(cfg.LOG_LEVEL)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(csrf.Middleware(csrf.Config{
		Secure:    true,
		SkipPaths: []string{"/register", "/login"},
	}))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DATABASE_URL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	mailQueue := mail.NewKafkaQueue(strings.Split(cfg.KAFKA_ADDRESS, ","), cfg.MAIL_TOPIC)
	defer mailQueue.Close()

	store := &repo.GormRepo{DB: database}

	cartService := &cart.Service{Store: store, Products: store}
	catalogService := catalog.NewService(store)
	orderService := &order.Service{Cart: store, Users: store, Queue: mailQueue}
	tokenService := &token.Service{
		DB:            database,
		JWTSecret:     []byte(cfg.JWT_SECRET),
		RefreshSecret: []byte(cfg.REFRESH_SECRET),
	}

	deps := &httpserver.Deps{
		CartHandler:    &httpserver.CartHTTP{Svc: cartService},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogService},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderService},
		AuthHandler:    &httpserver.AuthHTTP{DB: database, Tokens: tokenService},
		Tokens:         tokenService,
	}

	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: cfg.ES_INDEX}
	}

	httpserver.Register(e, deps)

	go func() {
		logger.Info("starting server", "port", cfg.SERVER_PORT)
		if err := e.Start(":" + cfg.SERVER_PORT); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
