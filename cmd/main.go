package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	cancelBookingHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/create_booking"
	exportReportHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/export_report"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/get_available_slots"
	getTransactionsHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/get_transactions"
	getUserTransactionsHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/get_user_transactions"
	loginHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/login"
	reissueReceiptHandler "github.com/m04kA/SMC-StationBooking/internal/api/handlers/reissue_receipt"
	"github.com/m04kA/SMC-StationBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StationBooking/internal/config"
	"github.com/m04kA/SMC-StationBooking/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-StationBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-StationBooking/internal/infra/storage/receipts"
	"github.com/m04kA/SMC-StationBooking/internal/infra/storage/reports"
	slotsRepo "github.com/m04kA/SMC-StationBooking/internal/infra/storage/slots"
	"github.com/m04kA/SMC-StationBooking/internal/integrations/authservice"
	bookingsService "github.com/m04kA/SMC-StationBooking/internal/service/bookings"
	expirationService "github.com/m04kA/SMC-StationBooking/internal/service/expiration"
	transactionsService "github.com/m04kA/SMC-StationBooking/internal/service/transactions"
	createBookingUC "github.com/m04kA/SMC-StationBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StationBooking/pkg/logger"
	"github.com/m04kA/SMC-StationBooking/pkg/metrics"
	"github.com/m04kA/SMC-StationBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StationBooking...")

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен: все Observe* становятся no-op.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилища состояния: одно на процесс
	slotRepository := slotsRepo.NewRepository()
	ledgerRepository := ledgerRepo.NewRepository()
	txMgr := txmanager.NewTransactionManager()

	// Приемники квитанций: файлы всегда, архив в PostgreSQL по настройке
	sinks := []receipts.Sink{receipts.NewFileSink(cfg.Receipts.Dir)}

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		pgSink := receipts.NewPostgresSink(db)
		if err := pgSink.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare receipts archive: %v", err)
		}
		sinks = append(sinks, pgSink)
	}
	receiptSink := receipts.NewMultiSink(sinks...)
	reportWriter := reports.NewFileWriter(cfg.Reports.Dir)

	// Справочник пользователей
	accounts := make([]authservice.Account, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		accounts = append(accounts, authservice.Account{
			Username: u.Username,
			Password: u.Password,
			Role:     domain.Role(u.Role),
		})
	}
	authClient, err := authservice.NewClient(accounts, log)
	if err != nil {
		log.Fatal("Failed to initialize user directory: %v", err)
	}
	log.Info("User directory initialized with %d accounts", len(accounts))

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		slotRepository,
		ledgerRepository,
		txMgr,
		metricsCollector,
		log,
	)
	expirationSvc := expirationService.NewService(
		slotRepository,
		txMgr,
		metricsCollector,
		log,
	)
	transactionSvc := transactionsService.NewService(
		ledgerRepository,
		reportWriter,
		receiptSink,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingSvc,
		receiptSink,
		ledgerRepository,
		metricsCollector,
		log,
	)

	// Фоновая очистка просроченных слотов
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	expirationWorker := expirationService.NewWorker(
		expirationSvc,
		time.Duration(cfg.Expiration.IntervalMs)*time.Millisecond,
		log,
	)
	expirationWorker.Start(workerCtx)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authClient, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserTransactions := getUserTransactionsHandler.NewHandler(transactionSvc, log)
	getTransactions := getTransactionsHandler.NewHandler(transactionSvc, log)
	exportReport := exportReportHandler.NewHandler(transactionSvc, log)
	reissueReceipt := reissueReceiptHandler.NewHandler(transactionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Вход ---
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// --- Слоты и бронирования ---
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{date}/{station:[0-9]+}/{slot:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Журнал транзакций ---
	api.HandleFunc("/users/{username}/transactions", getUserTransactions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/transactions", getTransactions.Handle).Methods(http.MethodGet)

	// --- Отчеты и квитанции ---
	api.HandleFunc("/reports/{date}", exportReport.Handle).Methods(http.MethodPost)
	api.HandleFunc("/receipts/last", reissueReceipt.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
