package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"defensa_juridica_web/config"
	"defensa_juridica_web/db"
	"defensa_juridica_web/handlers"
	"defensa_juridica_web/middleware"
	"defensa_juridica_web/models"
	"defensa_juridica_web/services"
	"defensa_juridica_web/services/i18n"
	"defensa_juridica_web/services/jobs"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}
	services.InitializeStorage(cfg)
	middleware.InitAssetVersions("static")

	if !cfg.MailConfigured() {
		log.Println("[WARNING] RESEND_API_KEY not set, the contact form will answer with a configuration error")
	}

	metrics := middleware.NewMetrics()
	slides := services.DefaultSlides(services.Storage)
	sliderSocket := handlers.NewSliderSocket(slides, handlers.SliderConfig(cfg), metrics, cfg.AllowedOrigins)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	abuseMonitor := services.NewAbuseMonitor()
	go abuseMonitor.Run(monitorCtx, time.Hour)

	e := newServer(cfg, metrics, sliderSocket, abuseMonitor)

	// Background jobs
	scheduler, err := jobs.StartScheduler(db.DB, cfg)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down")

	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server shutdown: %v", err)
	}
}
