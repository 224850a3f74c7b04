package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"notehub/internal/auth"
	"notehub/internal/collab"
	"notehub/internal/config"
	"notehub/internal/database"
	"notehub/internal/database/migration"
	handlers "notehub/internal/http/handler"
	"notehub/internal/http/middleware"
	"notehub/internal/mailer"
	"notehub/internal/model"
	"notehub/internal/otel"
	"notehub/internal/repository/postgres"
	"notehub/internal/service"
	"notehub/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Redis backs the daily usage counters.
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	tokenMgr, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}
	mail := mailer.NewSMTP(cfg.SMTP)

	// Repositories and services
	boardRepo := postgres.NewBoardPostgres(db)
	pageRepo := postgres.NewPagePostgres(db)
	folderRepo := postgres.NewFolderPostgres(db)
	taskRepo := postgres.NewTaskPostgres(db)
	shareRepo := postgres.NewShareGrantPostgres(db)
	userRepo := postgres.NewUserPostgres(db)

	svcs := handlers.Services{
		Boards:  service.NewBoardService(boardRepo),
		Pages:   service.NewPageService(pageRepo),
		Folders: service.NewFolderService(objStore, folderRepo),
		Tasks:   service.NewTaskService(taskRepo),
		Shares:  service.NewShareService(shareRepo, mail, cfg.BaseURL),
		Usage:   service.NewUsageService(rdb, userRepo, nil),
	}

	// Metrics registry shared by the HTTP middleware and the collab layer.
	promRegistry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}
	collabMetrics, err := collab.NewMetrics(promRegistry)
	if err != nil {
		log.Fatalf("failed to initialize collab metrics: %v", err)
	}

	// Realtime collaboration: one registry, per-kind gates and relays.
	roomRegistry := collab.NewRegistry()
	boardStore := collab.NewBoardStore(boardRepo)
	pageStore := collab.NewPageStore(pageRepo)
	stores := map[model.DocumentKind]collab.DocumentStore{
		model.KindBoard: boardStore,
		model.KindPage:  pageStore,
	}
	gates := map[model.DocumentKind]*collab.Gate{
		model.KindBoard: collab.NewGate(boardStore, shareRepo, tokenMgr),
		model.KindPage:  collab.NewGate(pageStore, shareRepo, tokenMgr),
	}
	relays := map[model.DocumentKind]*collab.Relay{
		model.KindBoard: collab.NewRelay(roomRegistry, boardStore, collabMetrics),
		model.KindPage:  collab.NewRelay(roomRegistry, pageStore, collabMetrics),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, db, svcs, auth.RequireAuth(tokenMgr),
		handlers.SharedDocs{Gates: gates, Stores: stores},
		handlers.CollabDeps{
			Registry:        roomRegistry,
			Gates:           gates,
			Relays:          relays,
			Metrics:         collabMetrics,
			MaxMessageBytes: cfg.Collab.MaxMessageBytes,
		},
		promRegistry,
	)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
