package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sipline/drink_shop/internal/config"
	"github.com/sipline/drink_shop/internal/db"
	"github.com/sipline/drink_shop/internal/es"
	"github.com/sipline/drink_shop/internal/httpserver"
	"github.com/sipline/drink_shop/internal/logging"
	"github.com/sipline/drink_shop/internal/middleware"
	"github.com/sipline/drink_shop/internal/mykafka"
	"github.com/sipline/drink_shop/internal/repo"
	"github.com/sipline/drink_shop/internal/service"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	gormRepo := &repo.GormRepo{DB: database}

	catalogSvc := service.CatalogService{Repo: gormRepo}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Printf("elasticsearch unavailable, falling back to store search: %v", err)
		} else {
			catalogSvc.ES = esClient
		}
	}

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc: &service.AuthService{
				Repo:      gormRepo,
				JWTSecret: cfg.JWTSecret,
				TokenTTL:  cfg.TokenTTL,
				Producer:  producer,
			},
		},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: &catalogSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: gormRepo}},
		OrderHandler: &httpserver.OrderHTTP{
			Svc: &service.OrderService{Repo: gormRepo, Producer: producer},
		},
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		log.Printf("Starting %s on %s...", cfg.ServiceName, addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
