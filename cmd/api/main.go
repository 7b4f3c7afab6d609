package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/immaculate/crm-backend/internal/http/handlers"
	"github.com/immaculate/crm-backend/internal/platform/mailer"
	"github.com/immaculate/crm-backend/internal/service"
	"github.com/immaculate/crm-backend/internal/store"
	"github.com/immaculate/crm-backend/pkg/config"
	"github.com/immaculate/crm-backend/pkg/events"
	"github.com/immaculate/crm-backend/pkg/logger"
	mw "github.com/immaculate/crm-backend/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on OS environment")
	}
	cfg := config.Load()

	// In-memory record store, seeded once at startup
	st := store.New()
	if customers, bookings, err := st.LoadSeed(cfg.Store.SeedFile); err != nil {
		logger.Warn("Seed data not loaded, starting empty", "file", cfg.Store.SeedFile, "error", err)
	} else {
		logger.Info("Seed data loaded", "customers", customers, "bookings", bookings)
	}

	// Event bus: NATS when configured, log-only otherwise
	var bus events.Publisher
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		bus = natsBus
	} else {
		bus = events.NewLogEventBus()
	}
	defer bus.Close()

	// Owner notifications
	var mail mailer.Service
	switch {
	case cfg.Email.DevMode:
		mail = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mail = mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.OwnerName, cfg.Email.SMTPFrom)
	default:
		mail = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass)
	}

	// Services
	intakeService := service.NewIntakeService(st, bus, mail, cfg)
	statsService := service.NewStatsService(st)

	// Daily summary job
	summaryJob := service.NewSummaryJob(statsService, cfg.Jobs.SummarySchedule)
	if err := summaryJob.Start(); err != nil {
		logger.Error("Failed to start summary job", "error", err)
		os.Exit(1)
	}
	defer summaryJob.Stop()

	// Handlers
	h := handlers.New(intakeService, statsService, st)

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("crm-api"))
	r.Use(mw.Logging)
	r.Use(mw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	r.Mount("/api", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down CRM API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting CRM API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
