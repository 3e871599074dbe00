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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createCalculationHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/create_calculation"
	deleteCalculationHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/delete_calculation"
	getCalculationHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/get_calculation"
	getCalculationsHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/get_calculations"
	getCalculationsReportHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/get_calculations_report"
	updateCalculationHandler "github.com/m04kA/SMC-DeadlineService/internal/api/handlers/update_calculation"
	"github.com/m04kA/SMC-DeadlineService/internal/api/middleware"
	"github.com/m04kA/SMC-DeadlineService/internal/config"
	"github.com/m04kA/SMC-DeadlineService/internal/domain"
	"github.com/m04kA/SMC-DeadlineService/internal/infra/cache"
	auditlogRepo "github.com/m04kA/SMC-DeadlineService/internal/infra/storage/auditlog"
	calculationRepo "github.com/m04kA/SMC-DeadlineService/internal/infra/storage/calculation"
	calculationsService "github.com/m04kA/SMC-DeadlineService/internal/service/calculations"
	deadlineService "github.com/m04kA/SMC-DeadlineService/internal/service/deadline"
	createCalculationUC "github.com/m04kA/SMC-DeadlineService/internal/usecase/create_calculation"
	"github.com/m04kA/SMC-DeadlineService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeadlineService/pkg/logger"
	"github.com/m04kA/SMC-DeadlineService/pkg/metrics"
	"github.com/m04kA/SMC-DeadlineService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DeadlineService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env, если файл есть
	_ = godotenv.Load()

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

	log.Info("Starting SMC-DeadlineService...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к Redis; без него сервис работает с выключенным кешем
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable, caching disabled: %v", err)
			redisClient = nil
		} else {
			log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Address)
			defer redisClient.Close()
		}
		cancelPing()
	}

	recordCache := cache.New(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)

	// Собираем недельное расписание рабочих часов из конфигурации
	schedule, err := domain.NewBusinessSchedule(cfg.BusinessHours.ByWeekday())
	if err != nil {
		log.Fatal("Failed to build business hours schedule: %v", err)
	}

	deadlineSvc := deadlineService.NewService(schedule)
	log.Info("Business hours schedule loaded: %s", deadlineSvc.BusinessHoursData())

	// Инициализируем репозитории (с метриками или без)
	var (
		calcRepository  *calculationRepo.Repository
		auditRepository *auditlogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		calcRepository = calculationRepo.NewRepository(wrappedDB)
		auditRepository = auditlogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		calcRepository = calculationRepo.NewRepository(db)
		auditRepository = auditlogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	calculationsSvc := calculationsService.NewService(
		calcRepository,
		auditRepository,
		deadlineSvc,
		recordCache,
		log,
	)

	// Инициализируем use cases
	createCalculationUseCase := createCalculationUC.NewUseCase(
		calcRepository,
		auditRepository,
		deadlineSvc,
		txMgr,
		recordCache,
		log,
	)

	// Инициализируем handlers
	createCalculation := createCalculationHandler.NewHandler(createCalculationUseCase, log)
	getCalculation := getCalculationHandler.NewHandler(calculationsSvc, log)
	getCalculations := getCalculationsHandler.NewHandler(calculationsSvc, log)
	updateCalculation := updateCalculationHandler.NewHandler(calculationsSvc, createCalculationUseCase, log)
	deleteCalculation := deleteCalculationHandler.NewHandler(calculationsSvc, log)
	getCalculationsReport := getCalculationsReportHandler.NewHandler(calculationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID())

	// Ограничение частоты запросов (если включено)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.0f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness / readiness probes
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		if redisClient != nil {
			if err := redisClient.Ping(req.Context()).Err(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("redis unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи расчетов рабочих часов ---
	// Создание записи расчета
	api.HandleFunc("/business-hours-calculators", createCalculation.Handle).Methods(http.MethodPost)

	// Список записей расчетов
	api.HandleFunc("/business-hours-calculators", getCalculations.Handle).Methods(http.MethodGet)

	// Обновление записи расчета (без ID в теле работает как создание)
	api.HandleFunc("/business-hours-calculators", updateCalculation.Handle).Methods(http.MethodPut)

	// Выгрузка записей в xlsx, маршрут регистрируется раньше {id}
	api.HandleFunc("/business-hours-calculators/report", getCalculationsReport.Handle).Methods(http.MethodGet)

	// Получение записи расчета по ID
	api.HandleFunc("/business-hours-calculators/{id}", getCalculation.Handle).Methods(http.MethodGet)

	// Удаление записи расчета
	api.HandleFunc("/business-hours-calculators/{id}", deleteCalculation.Handle).Methods(http.MethodDelete)

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
