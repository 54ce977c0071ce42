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
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/config"
	"github.com/arrazka/lifeboard/internal/handler"
	"github.com/arrazka/lifeboard/internal/integrations/rates"
	"github.com/arrazka/lifeboard/internal/repository"
	"github.com/arrazka/lifeboard/internal/scheduler"
	"github.com/arrazka/lifeboard/internal/service"
	"github.com/arrazka/lifeboard/internal/storage"
	"github.com/arrazka/lifeboard/internal/utils/email"
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

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
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
	if err := repository.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize document storage
	store, err := storage.NewStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to document storage: %v", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		logger.Fatalf("Failed to prepare document bucket: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)
	quranRepo := repository.NewQuranRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize integrations
	ratesClient := rates.NewClient(cfg, logger)
	sender := email.NewSender(cfg, logger)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, logger, cfg)
	accountSvc := service.NewAccountService(accountRepo, logger)
	transactionSvc := service.NewTransactionService(accountRepo, transactionRepo, logger)
	installmentSvc := service.NewInstallmentService(installmentRepo, accountRepo, transactionSvc, logger)
	debtSvc := service.NewDebtService(debtRepo, transactionSvc, logger)
	prayerSvc := service.NewPrayerService(prayerRepo, logger)
	quranSvc := service.NewQuranService(quranRepo, logger)
	documentSvc := service.NewDocumentService(documentRepo, store, logger)
	taskSvc := service.NewTaskService(taskRepo, logger)
	reportSvc := service.NewReportService(transactionSvc, logger)
	dashboardSvc := service.NewDashboardService(userRepo, accountSvc, transactionSvc, installmentSvc,
		debtSvc, prayerSvc, quranSvc, ratesClient, logger)

	h := handler.NewHandler(handler.Services{
		Auth:         authSvc,
		Accounts:     accountSvc,
		Transactions: transactionSvc,
		Installments: installmentSvc,
		Debts:        debtSvc,
		Prayers:      prayerSvc,
		Quran:        quranSvc,
		Documents:    documentSvc,
		Tasks:        taskSvc,
		Reports:      reportSvc,
		Dashboard:    dashboardSvc,
	}, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(handler.AuthMiddleware(authSvc, logger))
	api.HandleFunc("/me", h.Me).Methods("GET")
	api.HandleFunc("/dashboard", h.Dashboard).Methods("GET")

	api.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	api.HandleFunc("/accounts", h.ListAccounts).Methods("GET")
	api.HandleFunc("/accounts/{id}", h.GetAccount).Methods("GET")
	api.HandleFunc("/accounts/{id}", h.DeleteAccount).Methods("DELETE")
	api.HandleFunc("/accounts/{id}/transactions", h.ListAccountTransactions).Methods("GET")

	api.HandleFunc("/transactions", h.RecordTransaction).Methods("POST")
	api.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	api.HandleFunc("/transactions/transfer", h.Transfer).Methods("POST")
	api.HandleFunc("/transactions/summary", h.MonthlySummary).Methods("GET")
	api.HandleFunc("/transactions/export", h.ExportTransactions).Methods("GET")
	api.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods("DELETE")

	api.HandleFunc("/plans", h.CreatePlan).Methods("POST")
	api.HandleFunc("/plans", h.ListPlans).Methods("GET")
	api.HandleFunc("/plans/{id}", h.GetPlan).Methods("GET")
	api.HandleFunc("/plans/{id}", h.DeletePlan).Methods("DELETE")
	api.HandleFunc("/plans/{id}/pay", h.PayInstallment).Methods("POST")

	api.HandleFunc("/debts", h.CreateDebt).Methods("POST")
	api.HandleFunc("/debts", h.ListDebts).Methods("GET")
	api.HandleFunc("/debts/summary", h.DebtSummary).Methods("GET")
	api.HandleFunc("/debts/{id}/payments", h.RecordDebtPayment).Methods("POST")
	api.HandleFunc("/debts/{id}", h.DeleteDebt).Methods("DELETE")

	api.HandleFunc("/prayers", h.UpsertPrayerLog).Methods("PUT")
	api.HandleFunc("/prayers/today", h.TodayPrayerLog).Methods("GET")
	api.HandleFunc("/prayers/stats", h.PrayerStats).Methods("GET")

	api.HandleFunc("/quran/sessions", h.LogQuranSession).Methods("POST")
	api.HandleFunc("/quran/sessions", h.ListQuranSessions).Methods("GET")
	api.HandleFunc("/quran/progress", h.QuranProgress).Methods("GET")

	api.HandleFunc("/documents", h.UploadDocument).Methods("POST")
	api.HandleFunc("/documents", h.ListDocuments).Methods("GET")
	api.HandleFunc("/documents/{id}/url", h.DocumentDownloadURL).Methods("GET")
	api.HandleFunc("/documents/{id}", h.DeleteDocument).Methods("DELETE")

	api.HandleFunc("/tasks", h.CreateTask).Methods("POST")
	api.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	api.HandleFunc("/tasks/{id}", h.SetTaskDone).Methods("PATCH")
	api.HandleFunc("/tasks/{id}", h.DeleteTask).Methods("DELETE")

	// Start reminder scheduler
	sched := scheduler.New(userRepo, installmentRepo, debtRepo, sender, logger)
	if err := sched.Start(cfg.ReminderCron); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}
