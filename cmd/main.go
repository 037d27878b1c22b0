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
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/create_booking"
	createManualBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/create_manual_booking"
	extendBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/extend_booking"
	getAdminBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/get_admin_booking"
	getAdminBookingsHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/get_admin_bookings"
	getAvailabilityHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/get_booking"
	healthHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/health"
	lookupBookingsHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/lookup_bookings"
	markBookingReadHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/mark_booking_read"
	payBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/pay_booking"
	transitionBookingHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/transition_booking"
	updateBookingDatesHandler "github.com/m04kA/RentalBookingService/internal/api/handlers/update_booking_dates"
	"github.com/m04kA/RentalBookingService/internal/api/middleware"
	"github.com/m04kA/RentalBookingService/internal/config"
	"github.com/m04kA/RentalBookingService/internal/infra/cache/calendar"
	actionLogRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/actionlog"
	bookingRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/booking"
	branchRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/branch"
	vehicleRepo "github.com/m04kA/RentalBookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/RentalBookingService/internal/integrations/auditlog"
	"github.com/m04kA/RentalBookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/events"
	createBookingUC "github.com/m04kA/RentalBookingService/internal/usecase/create_booking"
	extendBookingUC "github.com/m04kA/RentalBookingService/internal/usecase/extend_booking"
	getAvailabilityUC "github.com/m04kA/RentalBookingService/internal/usecase/get_availability"
	transitionBookingUC "github.com/m04kA/RentalBookingService/internal/usecase/transition_booking"
	updateBookingDatesUC "github.com/m04kA/RentalBookingService/internal/usecase/update_booking_dates"
	"github.com/m04kA/RentalBookingService/pkg/bookingcode"
	"github.com/m04kA/RentalBookingService/pkg/dbmetrics"
	"github.com/m04kA/RentalBookingService/pkg/logger"
	"github.com/m04kA/RentalBookingService/pkg/metrics"
	"github.com/m04kA/RentalBookingService/pkg/txmanager"
)

const rateLimiterCleanupInterval = time.Minute

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

	log.Info("Starting RentalBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Все фоновые горутины (статистика пула, очистка rate limiter) останавливаются через stopCh
	stopCh := make(chan struct{})

	// Инициализируем метрики (если включены). nil коллектор безопасен: методы ничего не делают
	var metricsCollector *metrics.Metrics
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB).WithRetryObserver(metricsCollector)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	vehicleRepository := vehicleRepo.NewRepository(wrappedDB)
	branchRepository := branchRepo.NewRepository(wrappedDB)
	actionLogRepository := actionLogRepo.NewRepository(wrappedDB)

	// Redis необязателен: без него календарь читается из БД, уведомления не отправляются.
	// Интерфейсы остаются nil, а не typed nil.
	var (
		calendarCache       getAvailabilityUC.CalendarCache
		calendarInvalidator events.CalendarInvalidator
		bookingNotifier     events.Notifier
	)
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кэш и уведомления деградируют сами, сервис продолжает работу
			log.Warn("Redis ping failed (addr=%s): %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache := calendar.NewCache(rdb, cfg.Booking.CacheTTL())
		calendarCache = cache
		calendarInvalidator = cache
		bookingNotifier = notifier.NewNotifier(rdb, cfg.Booking.NotificationsChannel, log)
		log.Info("Redis enabled (addr=%s): calendar cache ttl=%s, notifications channel=%s",
			cfg.Redis.Addr, cfg.Booking.CacheTTL(), cfg.Booking.NotificationsChannel)
	} else {
		log.Info("Redis disabled: calendar cache and notifications are off")
	}

	// Побочные эффекты после commit: кэш, журнал действий, уведомления
	auditSink := auditlog.NewSink(actionLogRepository, log)
	dispatcher := events.NewDispatcher(bookingNotifier, auditSink, calendarInvalidator, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		dispatcher,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		branchRepository,
		txMgr,
		bookingcode.NewGenerator(cfg.Booking.CodePrefix),
		dispatcher,
		metricsCollector,
		log,
	)

	extendBookingUseCase := extendBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	updateBookingDatesUseCase := updateBookingDatesUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		calendarCache,
		metricsCollector,
		cfg.Booking.MaxCalendarDays,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	payBooking := payBookingHandler.NewHandler(bookingSvc, log)
	lookupBookings := lookupBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)

	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBooking := getAdminBookingHandler.NewHandler(bookingSvc, log)
	createManualBooking := createManualBookingHandler.NewHandler(createBookingUseCase, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	updateBookingDates := updateBookingDatesHandler.NewHandler(updateBookingDatesUseCase, log)
	markBookingRead := markBookingReadHandler.NewHandler(bookingSvc, log)

	health := healthHandler.NewHandler(wrappedDB, log)

	// Middleware
	adminAuth := middleware.NewAdminAuth(cfg.Auth.JWTSecret, cfg.Auth.AdminRole, cfg.Auth.Issuer, log)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
	go limiter.RunCleanup(rateLimiterCleanupInterval, stopCh)

	// limited оборачивает публичные маршруты поиска по коду и телефону
	limited := func(h http.HandlerFunc) http.Handler {
		return limiter.Middleware(h)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, X-User-ID необязателен)
	// ============================================================

	// Создание бронирования
	api.Handle("/bookings", middleware.OptionalUser(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Поиск бронирований по телефону (до /bookings/{code})
	api.Handle("/bookings/lookup", limited(lookupBookings.Handle)).Methods(http.MethodGet)

	// Просмотр, продление и оплата по коду
	api.Handle("/bookings/{code}", limited(getBooking.Handle)).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{code}/extend", extendBooking.Handle).Methods(http.MethodPatch)
	api.Handle("/bookings/{code}/pay", limited(payBooking.Handle)).Methods(http.MethodPost)

	// Календарь доступности автомобиля
	api.HandleFunc("/vehicles/{id}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с ролью администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createManualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}", getAdminBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/dates", updateBookingDates.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}/read", markBookingRead.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}/{action:start|cancel|complete}", transitionBooking.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи
	close(stopCh)

	log.Info("Server stopped gracefully")
}
