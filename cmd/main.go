package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ocene/backend/internal/api/handler"
	"ocene/backend/internal/api/middleware"
	"ocene/backend/internal/config"
	"ocene/backend/internal/logging"
	"ocene/backend/internal/storage"
	"ocene/backend/internal/subscribers"
)

func setupStorage(cfg config.Config) *storage.Service {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	s := storage.NewStorageService(db)
	if err := s.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return s
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	audit := logging.New("Ocene", cfg.ShipperAddr())
	defer audit.Sync()
	audit.Setup("setting up ratings service")

	s := setupStorage(cfg)
	directory := subscribers.NewClient(cfg.UporabnikiURL)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())

	h := handler.NewHandler(s, directory, audit)
	h.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	audit.Setup("ratings service ready")
	log.Fatal(server.ListenAndServe())
}
