package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/ubelabs/expense-tracker/internal/config"
	"github.com/ubelabs/expense-tracker/internal/handler"
	"github.com/ubelabs/expense-tracker/internal/integrations/rates"
	"github.com/ubelabs/expense-tracker/internal/middleware"
	"github.com/ubelabs/expense-tracker/internal/repository"
	"github.com/ubelabs/expense-tracker/internal/service"
	"github.com/ubelabs/expense-tracker/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration, .env is optional
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// All dates render and count in one fixed zone
	loc, err := time.LoadLocation(cfg.ReportTZ)
	if err != nil {
		logger.Fatalf("Failed to load report time zone %q: %v", cfg.ReportTZ, err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(cfg.DBConn); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg, loc)
	h := handler.NewHandler(svc, cfg, logger)
	sender := email.NewSender(cfg, logger)
	reportSvc := service.NewReportService(repo, sender, logger, loc)
	ratesClient := rates.NewClient(cfg, repo, logger)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	// Public routes
	api.HandleFunc("/user/sign-up", h.SignUp).Methods("POST")
	api.HandleFunc("/user/login", h.Login).Methods("POST")
	api.HandleFunc("/user/logout", h.Logout).Methods("POST")
	api.HandleFunc("/page/verify-token", h.VerifyToken).Methods("GET")
	api.HandleFunc("/currency", h.ListCurrencies).Methods("GET")
	// Protected routes
	authRouter := api.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/user/get-basic-information/{username}", h.GetBasicInformation).Methods("GET")
	authRouter.HandleFunc("/user/settings/{username}", h.UpdateSettings).Methods("PUT")
	authRouter.HandleFunc("/category", h.ListCategories).Methods("GET")
	authRouter.HandleFunc("/budget/get-name/{username}", h.ListBudgetNames).Methods("GET")
	authRouter.HandleFunc("/budget/{username}/{currency_code}", h.ListBudgets).Methods("GET")
	authRouter.HandleFunc("/budget/{username}", h.CreateBudget).Methods("POST")
	authRouter.HandleFunc("/budget/{username}/{sequence}", h.UpdateBudget).Methods("PUT")
	authRouter.HandleFunc("/budget/{username}/{sequence}", h.DeleteBudget).Methods("DELETE")
	authRouter.HandleFunc("/savings/{username}/{currency_code}", h.ListSavings).Methods("GET")
	authRouter.HandleFunc("/savings/{username}", h.CreateSaving).Methods("POST")
	authRouter.HandleFunc("/savings/{username}/{sequence}", h.UpdateSaving).Methods("PUT")
	authRouter.HandleFunc("/savings/{username}/{sequence}", h.DeleteSaving).Methods("DELETE")
	authRouter.HandleFunc("/transaction/{username}/{currency_code}", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/transaction/{username}", h.CreateTransaction).Methods("POST")
	authRouter.HandleFunc("/transaction/{username}/{sequence}", h.UpdateTransaction).Methods("PUT")
	authRouter.HandleFunc("/transaction/{username}/{sequence}", h.DeleteTransaction).Methods("DELETE")
	authRouter.HandleFunc("/dashboard/deadlines/{username}", h.Deadlines).Methods("GET")
	authRouter.HandleFunc("/dashboard/monthly-summary/{username}", h.MonthlySummary).Methods("GET")

	// Scheduled jobs run in the report zone so "daily at 8" means local 8
	scheduler := cron.New(cron.WithLocation(loc))
	if _, err := scheduler.AddFunc(cfg.ReportCron, func() {
		reportSvc.Run(time.Now())
	}); err != nil {
		logger.Fatalf("Failed to schedule daily report: %v", err)
	}
	if _, err := scheduler.AddFunc(cfg.RatesCron, func() {
		if err := ratesClient.Refresh(); err != nil {
			logger.Errorf("Currency rates refresh failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule rates refresh: %v", err)
	}
	scheduler.Start()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	// CORS wraps the whole router so preflight requests are answered
	// without a matching mux route
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg)(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	<-scheduler.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
