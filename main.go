package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/megahand-az/megahand-be/internal/api"
	"github.com/megahand-az/megahand-be/internal/config"
	"github.com/megahand-az/megahand-be/internal/database"
	"github.com/megahand-az/megahand-be/internal/logger"
	"github.com/megahand-az/megahand-be/internal/mailer"
	"github.com/megahand-az/megahand-be/internal/metrics"
	"github.com/megahand-az/megahand-be/internal/seed"
	"github.com/megahand-az/megahand-be/internal/services"
	"github.com/megahand-az/megahand-be/internal/session"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	userService := services.NewUserService(db)
	articleService := services.NewArticleService(db)
	locationService := services.NewLocationService(db)

	if cfg.Seed {
		if err := seed.Run(db, userService, articleService, locationService); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	// Set up the session store and its background prune job
	sessions := session.NewMemoryStore(cfg.SessionTTL)
	janitor, err := session.NewJanitor(sessions, "@every 1h")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up session janitor")
	}
	janitor.Run()

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	met := metrics.New()

	// Set up router
	router := api.NewRouter(cfg, userService, articleService, locationService, sessions, smtpMailer, met)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	janitor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
