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

	addScheduleRowHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/add_schedule_row"
	amendLocationUsageHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/amend_location_usage"
	checkAvailabilityHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/check_booking_availability"
	decorateLocationHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/decorate_location"
	findAvailableRoomsHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/find_available_rooms"
	getLocationUsageHandler "github.com/m04kA/SMC-VideoLinkService/internal/api/handlers/get_location_usage"
	"github.com/m04kA/SMC-VideoLinkService/internal/api/middleware"
	"github.com/m04kA/SMC-VideoLinkService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/booking"
	locationUsageRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/locationusage"
	prisonRegimeRepo "github.com/m04kA/SMC-VideoLinkService/internal/infra/storage/prisonregime"
	activitiesClient "github.com/m04kA/SMC-VideoLinkService/internal/integrations/activities"
	locationsClient "github.com/m04kA/SMC-VideoLinkService/internal/integrations/locations"
	"github.com/m04kA/SMC-VideoLinkService/internal/jobs"
	locationsService "github.com/m04kA/SMC-VideoLinkService/internal/service/locations"
	occupancyService "github.com/m04kA/SMC-VideoLinkService/internal/service/occupancy"
	ownershipService "github.com/m04kA/SMC-VideoLinkService/internal/service/ownership"
	"github.com/m04kA/SMC-VideoLinkService/internal/service/timeslots"
	checkAvailabilityUC "github.com/m04kA/SMC-VideoLinkService/internal/usecase/check_booking_availability"
	findAvailableRoomsUC "github.com/m04kA/SMC-VideoLinkService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-VideoLinkService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkService/pkg/metrics"
	"github.com/m04kA/SMC-VideoLinkService/pkg/txmanager"
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

	log.Info("Starting SMC-VideoLinkService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Без метрик обертка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	locations := locationsClient.NewClient(
		cfg.LocationsService.URL,
		time.Duration(cfg.LocationsService.Timeout)*time.Second,
		log,
	)
	activities := activitiesClient.NewClient(
		cfg.ActivitiesService.URL,
		time.Duration(cfg.ActivitiesService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (LocationsService=%s timeout=%ds, ActivitiesService=%s timeout=%ds)",
		cfg.LocationsService.URL, cfg.LocationsService.Timeout, cfg.ActivitiesService.URL, cfg.ActivitiesService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	usageRepository := locationUsageRepo.NewRepository(wrappedDB)
	regimeRepository := prisonRegimeRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	occupancySvc := occupancyService.NewService(
		bookingRepository,
		activitiesClient.NewSlotSource(activities, log),
		log,
	)
	ownershipSvc := ownershipService.NewService(usageRepository, log)
	slotGenerator := timeslots.NewGenerator(
		regimeRepository,
		timeslots.Defaults{
			StartOfDay:  cfg.Availability.DefaultStartOfDay,
			EndOfDay:    cfg.Availability.DefaultEndOfDay,
			StepMinutes: cfg.Availability.SlotStepMinutes,
		},
		log,
	)
	locationsSvc := locationsService.NewService(usageRepository, locations, txMgr, log)

	// Инициализируем use cases
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		locations,
		ownershipSvc,
		slotGenerator,
		occupancySvc,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		occupancySvc,
		slotGenerator,
		locations,
		ownershipSvc,
		metricsCollector,
		cfg.Availability.MaxAlternatives,
		log,
	)

	// Фоновые задачи
	var scheduler *jobs.Scheduler
	if cfg.Jobs.ReactivationEnabled {
		scheduler, err = jobs.NewScheduler(
			locationsSvc,
			cfg.Jobs.ReactivationSchedule,
			time.Duration(cfg.Jobs.ReactivationTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Block reactivation job scheduled (%s)", cfg.Jobs.ReactivationSchedule)
	}

	// Инициализируем handlers
	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getLocationUsage := getLocationUsageHandler.NewHandler(locationsSvc, log)
	decorateLocation := decorateLocationHandler.NewHandler(locationsSvc, log)
	amendLocationUsage := amendLocationUsageHandler.NewHandler(locationsSvc, log)
	addScheduleRow := addScheduleRowHandler.NewHandler(locationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность комнат ---
	// Свободные комнаты тюрьмы на дату
	api.HandleFunc("/prisons/{prisonCode}/available-rooms", findAvailableRooms.Handle).Methods(http.MethodGet)

	// Проверка варианта бронирования и поиск альтернатив
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Политика владения комнатами (требует X-User-Name для изменений) ---
	api.HandleFunc("/locations/{locationId}/usage", getLocationUsage.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/usage", decorateLocation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/locations/{locationId}/usage", amendLocationUsage.Handle).Methods(http.MethodPut)
	api.HandleFunc("/locations/{locationId}/usage/schedule", addScheduleRow.Handle).Methods(http.MethodPost)

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

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик пула соединений
	close(stopMetricsCh)

	log.Info("Server exited")
}
