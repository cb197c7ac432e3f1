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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/cancel_booking"
	countPenaltiesHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/count_penalties"
	createBookingHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/get_booking"
	getProfessionalBookingsHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/get_professional_bookings"
	getUserBookingsHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/get_user_bookings"
	serviceActivationCheckHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/service_activation_check"
	startBoostHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/start_boost"
	updateAvailabilityHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/update_booking_status"
	updateSubscriptionHandler "github.com/m04kA/SMP-BookingService/internal/api/handlers/update_subscription"
	"github.com/m04kA/SMP-BookingService/internal/api/middleware"
	"github.com/m04kA/SMP-BookingService/internal/app"
	"github.com/m04kA/SMP-BookingService/internal/config"
	availabilityRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/booking"
	penaltyRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/penalty"
	subscriptionRepo "github.com/m04kA/SMP-BookingService/internal/infra/storage/subscription"
	identityServiceClient "github.com/m04kA/SMP-BookingService/internal/integrations/identityservice"
	availabilityService "github.com/m04kA/SMP-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMP-BookingService/internal/service/bookings"
	capacityService "github.com/m04kA/SMP-BookingService/internal/service/capacity"
	penaltiesService "github.com/m04kA/SMP-BookingService/internal/service/penalties"
	cancelBookingUC "github.com/m04kA/SMP-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMP-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMP-BookingService/internal/usecase/get_available_slots"
	updateBookingStatusUC "github.com/m04kA/SMP-BookingService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMP-BookingService/internal/worker"
	"github.com/m04kA/SMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SMP-BookingService/pkg/logger"
	"github.com/m04kA/SMP-BookingService/pkg/metrics"
	"github.com/m04kA/SMP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMP-BookingService/pkg/txmanager"
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

	log.Info("Starting SMP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	policy := cfg.Booking.Policy()
	log.Info("Booking policy: step=%dmin, notice=%dmin, horizon=%dd, response=%dh, late=%dh",
		policy.SlotStepMinutes, policy.MinBookingNoticeMinutes, policy.AdvanceBookingDays,
		policy.PendingResponseWindowHours, policy.LateCancelThresholdHours)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	migrator, err := app.NewMigrator(db)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database schema at version %d", version)
	}

	// Инициализируем интеграционных клиентов
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		penaltyRepository      *penaltyRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		penaltyRepository = penaltyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		penaltyRepository = penaltyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)
	capacitySvc := capacityService.NewService(identityClient, subscriptionRepository, log)
	penaltySvc := penaltiesService.NewService(penaltyRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		capacitySvc,
		txMgr,
		policy,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		&getAvailableSlotsUC.RealTimeProvider{},
		policy,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(bookingRepository, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, penaltySvc, txMgr, policy, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	startBoost := startBoostHandler.NewHandler(capacitySvc, log)
	serviceActivationCheck := serviceActivationCheckHandler.NewHandler(capacitySvc, log)
	updateSubscription := updateSubscriptionHandler.NewHandler(capacitySvc, log)
	countPenalties := countPenaltiesHandler.NewHandler(penaltySvc, log)

	// Запускаем фоновый свипер временных переходов
	sweeper := worker.NewSweeper(
		bookingRepository,
		time.Duration(cfg.Worker.SweepIntervalSeconds)*time.Second,
		policy,
		sweeperMetrics(metricsCollector),
		log,
	)
	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	sweeper.Start(sweeperCtx)
	defer cancelSweeper()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты для бронирования
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Еженедельное расписание профессионала
	api.HandleFunc("/professionals/{professionalId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/bookings", getProfessionalBookings.Handle).Methods(http.MethodGet)

	// --- Управление профилем профессионала ---
	protected.HandleFunc("/professionals/{professionalId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/boost", startBoost.Handle).Methods(http.MethodPost)

	// ============================================================
	// INTERNAL ROUTES (service-to-service)
	// ============================================================

	internal := r.PathPrefix("/internal").Subrouter()
	internal.HandleFunc("/professionals/{professionalId}/service-activation-check",
		serviceActivationCheck.Handle).Methods(http.MethodPost)
	internal.HandleFunc("/professionals/{professionalId}/subscription",
		updateSubscription.Handle).Methods(http.MethodPut)
	internal.HandleFunc("/actors/{actorId}/penalties", countPenalties.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи
	sweeper.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

// sweeperMetrics возвращает коллектор метрик свипера или no-op заглушку,
// когда метрики выключены
func sweeperMetrics(m *metrics.Metrics) worker.Metrics {
	if m != nil {
		return m
	}
	return noopSweeperMetrics{}
}

type noopSweeperMetrics struct{}

func (noopSweeperMetrics) AddSweeperTransitions(string, float64) {}
func (noopSweeperMetrics) IncSweeperError(string)                {}
