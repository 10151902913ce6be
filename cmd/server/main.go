package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ledgerfox/backend/docs"
	"github.com/ledgerfox/backend/internal/audit"
	"github.com/ledgerfox/backend/internal/config"
	"github.com/ledgerfox/backend/internal/database"
	"github.com/ledgerfox/backend/internal/handlers"
	"github.com/ledgerfox/backend/internal/help"
	"github.com/ledgerfox/backend/internal/logger"
	mW "github.com/ledgerfox/backend/internal/middleware"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/ledgerfox/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Ledger Backend API
// @version 1.0
// @description Transaction journal construction and currency reconciliation for a personal finance ledger
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	configErr := config.Init()
	ledgerCfg := config.LoadLedgerConfig()
	helpCfg := config.LoadHelpConfig()

	log := logger.New(ledgerCfg.LogLevel)
	if configErr != nil {
		log.Warn().Err(configErr).Msg("Config file not found, using defaults")
	}

	docs.SwaggerInfo.Host = "localhost:" + ledgerCfg.Port

	db := database.InitDatabase(log)
	defer db.Close()

	redisClient := database.InitRedis(log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	store := repository.NewStore(db, ledgerCfg.DefaultCurrency)
	auditLogger := audit.NewLogger(log)

	journalService := services.NewJournalService(store, auditLogger, log)
	journalHandler := handlers.NewJournalHandler(journalService)

	helpProvider := help.NewRemoteProvider(redisClient, help.Options{
		BaseURL:  helpCfg.BaseURL,
		Routes:   helpCfg.Routes,
		CacheTTL: helpCfg.CacheTTL,
		Timeout:  helpCfg.Timeout,
	}, log)
	helpService := help.NewService(helpProvider, store.Repositories().Preferences, helpCfg.DefaultLanguage, log)
	helpHandler := handlers.NewHelpHandler(helpService)

	mW.InitAuthMiddleware(redisClient)

	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(mW.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mW.AuthMiddleware)

		r.Post("/transactions", journalHandler.StoreJournal)
		r.Get("/transactions/{journalID}", journalHandler.GetJournal)
		r.Put("/transactions/{journalID}/tags", journalHandler.UpdateTags)
		r.Put("/transactions/{journalID}/category", journalHandler.SetCategory)

		r.Get("/budget-limits/{limitID}", journalHandler.GetBudgetLimit)

		r.Get("/help/{route}", helpHandler.ShowHelp)
	})

	server := &http.Server{
		Addr:         ":" + ledgerCfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
