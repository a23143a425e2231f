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

	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_availability"
	createBlockedTimeHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_blocked_time"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getBranchStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_branch_status"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_user_reservations"
	invalidateBranchCacheHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/invalidate_branch_cache"
	listBlockedTimesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_blocked_times"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/cache"
	blockedRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/blocked"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/events"
	storeServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/storeservice"
	blockedService "github.com/m04kA/SMC-ReservationService/internal/service/blocked"
	busyService "github.com/m04kA/SMC-ReservationService/internal/service/busy"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	getBranchStatusUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_branch_status"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// storeClient то, что use cases ожидают от клиента сервиса магазинов (с кэшем или без)
type storeClient interface {
	GetBranch(ctx context.Context, storeID, branchID int64) (*domain.Branch, error)
	GetService(ctx context.Context, branchID, serviceID int64) (*domain.Service, error)
}

type eventPublisher interface {
	PublishReservationCreated(ctx context.Context, event events.ReservationCreated) error
	PublishReservationCanceled(ctx context.Context, event events.ReservationCanceled) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: обёртка БД просто проксирует вызовы
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	blockedRepository := blockedRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент сервиса магазинов с circuit breaker
	var stores storeClient = storeServiceClient.NewClient(
		cfg.StoreService.URL,
		time.Duration(cfg.StoreService.Timeout)*time.Second,
		log,
		storeServiceClient.WithBreaker(
			cfg.StoreService.BreakerFailures,
			time.Duration(cfg.StoreService.BreakerTimeout)*time.Second,
		),
	)
	log.Info("StoreService client initialized (url=%s, timeout=%ds, breaker_failures=%d)",
		cfg.StoreService.URL, cfg.StoreService.Timeout, cfg.StoreService.BreakerFailures)

	// Кэш настроек филиалов и услуг (опционально)
	var cachedStores *cache.CachedStoreClient
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()

		cachedStores = cache.NewCachedStoreClient(stores, redisCache, time.Duration(cfg.Redis.TTL)*time.Second, log)
		stores = cachedStores
		log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr(), cfg.Redis.TTL)
	}

	// Публикация событий (kafka или заглушка)
	var publisher eventPublisher = events.NopPublisher{}
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", brokers, cfg.Kafka.Topic)
	} else {
		log.Warn("Kafka brokers are not configured, events will not be published")
	}
	defer publisher.Close()

	// Сервисы
	availabilitySvc := availability.NewService(log)
	busySvc := busyService.NewService(reservationRepository, blockedRepository)
	reservationsSvc := reservationsService.NewService(reservationRepository, publisher, txMgr, log)
	blockedSvc := blockedService.NewService(blockedRepository, log)

	// Use cases
	defaultAnchor := cfg.Availability.DefaultAnchorOffsetHours

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		stores,
		busySvc,
		availabilitySvc,
		metricsCollector,
		defaultAnchor,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		stores,
		busySvc,
		availabilitySvc,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		stores,
		busySvc,
		availabilitySvc,
		publisher,
		txMgr,
		defaultAnchor,
		log,
	)
	getBranchStatusUseCase := getBranchStatusUC.NewUseCase(
		stores,
		availabilitySvc,
		defaultAnchor,
		time.Duration(cfg.Availability.ClosingSoonMinutes)*time.Minute,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getBranchStatus := getBranchStatusHandler.NewHandler(getBranchStatusUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(blockedSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Server.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d per IP", cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/stores/{storeId}/branches/{branchId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/stores/{storeId}/branches/{branchId}/status",
		getBranchStatus.Handle).Methods(http.MethodGet)

	api.HandleFunc("/branches/{branchId}/availability-check",
		checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES (межсервисные, закрыты на уровне сети)
	// ============================================================

	internal := r.PathPrefix("/internal").Subrouter()

	internal.HandleFunc("/branches/{branchId}/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	internal.HandleFunc("/branches/{branchId}/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)

	if cachedStores != nil {
		invalidateCache := invalidateBranchCacheHandler.NewHandler(cachedStores, log)
		internal.HandleFunc("/stores/{storeId}/branches/{branchId}/cache",
			invalidateCache.Handle).Methods(http.MethodDelete)
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
