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

	checkStepHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/check_step"
	confirmQuoteHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/confirm_quote"
	createSessionHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/create_session"
	getBrandsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_brands"
	getCarFormHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_car_form"
	getConfirmationHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_confirmation"
	getModelsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_models"
	getSessionHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_session"
	getVersionsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_versions"
	getYearsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_years"
	listPlansHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/list_plans"
	nearbyLocationsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/nearby_locations"
	resetSessionHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/reset_session"
	saveStepHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/save_step"
	searchLocationsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/search_locations"
	selectPlanHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/select_plan"
	sendContactHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/send_contact"
	submitCarFormHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/submit_car_form"
	updateCarFormHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/update_car_form"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/config"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/session"
	geoNamesClient "github.com/m04kA/SMC-QuoteService/internal/integrations/geonames"
	georefClient "github.com/m04kA/SMC-QuoteService/internal/integrations/georef"
	mailerClient "github.com/m04kA/SMC-QuoteService/internal/integrations/mailer"
	vehicleCatalogClient "github.com/m04kA/SMC-QuoteService/internal/integrations/vehiclecatalog"
	zippopotamClient "github.com/m04kA/SMC-QuoteService/internal/integrations/zippopotam"
	carFormService "github.com/m04kA/SMC-QuoteService/internal/service/carform"
	catalogService "github.com/m04kA/SMC-QuoteService/internal/service/catalog"
	guardService "github.com/m04kA/SMC-QuoteService/internal/service/guard"
	locationService "github.com/m04kA/SMC-QuoteService/internal/service/location"
	plansService "github.com/m04kA/SMC-QuoteService/internal/service/plans"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
	quoteService "github.com/m04kA/SMC-QuoteService/internal/service/quote"
	confirmQuoteUC "github.com/m04kA/SMC-QuoteService/internal/usecase/confirm_quote"
	sendContactUC "github.com/m04kA/SMC-QuoteService/internal/usecase/send_contact"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/metrics"
)

// purgeInterval период удаления просроченных записей сессий в PostgreSQL
const purgeInterval = 10 * time.Minute

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

	log.Info("Starting SMC-QuoteService...")
	log.Info("Configuration loaded from config.toml (session driver=%s, offline_mode=%t)",
		cfg.Session.Driver, cfg.Session.OfflineMode)

	// Инициализируем метрики (если включены); методы nil-коллектора ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Хранилище сессий
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	storage, closeStorage, err := newSessionStorage(ctx, cfg, ttl, log)
	if err != nil {
		log.Fatal("Failed to initialize session storage: %v", err)
	}
	defer closeStorage()

	jsonCache := session.NewJSONCache(storage, log, metricsCollector)

	// Инициализируем интеграционных клиентов
	vehicleClient := vehicleCatalogClient.NewClient(
		cfg.VehicleCatalog.URL,
		time.Duration(cfg.VehicleCatalog.Timeout)*time.Second,
		log,
	)
	georef := georefClient.NewClient(
		cfg.Georef.URL,
		time.Duration(cfg.Georef.Timeout)*time.Second,
		log,
	)
	zippopotam := zippopotamClient.NewClient(
		cfg.Zippopotam.URL,
		time.Duration(cfg.Zippopotam.Timeout)*time.Second,
		log,
	)
	geoNames := geoNamesClient.NewClient(
		cfg.GeoNames.URL,
		cfg.GeoNames.Username,
		time.Duration(cfg.GeoNames.Timeout)*time.Second,
		log,
	)
	mailer := mailerClient.NewClient(mailerClient.Options{
		APIKey:    cfg.Mailer.APIKey,
		Host:      cfg.Mailer.Host,
		FromEmail: cfg.Mailer.FromEmail,
		FromName:  cfg.Mailer.FromName,
		Sandbox:   cfg.Mailer.Sandbox,
	}, log)
	log.Info("Integration clients initialized (VehicleCatalog=%s, Georef=%s, Zippopotam=%s, GeoNames=%s)",
		cfg.VehicleCatalog.URL, cfg.Georef.URL, cfg.Zippopotam.URL, cfg.GeoNames.URL)
	if cfg.Mailer.APIKey == "" {
		log.Warn("Mailer API key is not set, confirmation and contact emails will fail")
	}

	// Инициализируем сервисы
	clock := &pricing.RealTimeProvider{}

	quoteSvc := quoteService.NewService(jsonCache, ttl, log)
	guardSvc := guardService.NewService(quoteSvc, log)
	pricingEngine := pricing.NewEngine(clock)
	catalogSvc := catalogService.NewService(vehicleClient, jsonCache, clock, log, metricsCollector)
	locationSvc := locationService.NewService(georef, zippopotam, geoNames, jsonCache, log, metricsCollector)
	carFormSvc := carFormService.NewService(catalogSvc, quoteSvc, jsonCache, log)
	plansSvc := plansService.NewService(quoteSvc, pricingEngine, log)

	// Инициализируем use cases
	confirmQuoteUseCase := confirmQuoteUC.NewUseCase(
		quoteSvc,
		pricingEngine,
		mailer,
		metricsCollector,
		cfg.Mailer.QuoteTemplateID,
		log,
	)
	sendContactUseCase := sendContactUC.NewUseCase(
		mailer,
		metricsCollector,
		cfg.Mailer.ContactTemplateID,
		cfg.Mailer.ContactToEmail,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(log)
	getSession := getSessionHandler.NewHandler(quoteSvc, guardSvc, log)
	resetSession := resetSessionHandler.NewHandler(quoteSvc, log)
	saveStep := saveStepHandler.NewHandler(quoteSvc, guardSvc, log)
	checkStep := checkStepHandler.NewHandler(guardSvc, log)
	getBrands := getBrandsHandler.NewHandler(catalogSvc, log)
	getModels := getModelsHandler.NewHandler(catalogSvc, log)
	getVersions := getVersionsHandler.NewHandler(catalogSvc, log)
	getYears := getYearsHandler.NewHandler(catalogSvc)
	getCarForm := getCarFormHandler.NewHandler(carFormSvc, log)
	updateCarForm := updateCarFormHandler.NewHandler(carFormSvc, log)
	submitCarForm := submitCarFormHandler.NewHandler(carFormSvc, log)
	searchLocations := searchLocationsHandler.NewHandler(
		locationSvc,
		time.Duration(cfg.Search.DebounceMs)*time.Millisecond,
		ttl,
		log,
	)
	nearbyLocations := nearbyLocationsHandler.NewHandler(locationSvc, log)
	listPlans := listPlansHandler.NewHandler(plansSvc, log)
	selectPlan := selectPlanHandler.NewHandler(plansSvc, log)
	getConfirmation := getConfirmationHandler.NewHandler(confirmQuoteUseCase, log)
	confirmQuote := confirmQuoteHandler.NewHandler(confirmQuoteUseCase, log)
	sendContact := sendContactHandler.NewHandler(sendContactUseCase, log)

	// Подписчики на изменения заявки
	quoteSvc.Subscribe(func(change quoteService.Change) {
		if change.Reset {
			searchLocations.Forget(change.SessionID)
			metricsCollector.ObserveStepSave("reset")
			return
		}
		if change.Entity == quoteService.EntityCar {
			carFormSvc.Invalidate(context.Background(), change.SessionID)
		}
		metricsCollector.ObserveStepSave(string(change.Entity))
	})

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.Use(middleware.Connectivity(cfg.Session.OfflineMode))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/catalog/years", getYears.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contact", sendContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (идентификатор сессии в пути)
	// ============================================================

	sessions := api.PathPrefix("/sessions/{sessionId}").Subrouter()
	sessions.Use(middleware.Session)

	// --- Жизненный цикл заявки ---
	sessions.HandleFunc("", getSession.Handle).Methods(http.MethodGet)
	sessions.HandleFunc("", resetSession.Handle).Methods(http.MethodDelete)

	// --- Шаги мастера ---
	sessions.HandleFunc("/steps/{step}", checkStep.Handle).Methods(http.MethodGet)
	sessions.HandleFunc("/steps/{entity}", saveStep.Handle).Methods(http.MethodPut)

	// --- Шаг 1: автомобиль ---
	sessions.HandleFunc("/car-form", getCarForm.Handle).Methods(http.MethodGet)
	sessions.HandleFunc("/car-form", updateCarForm.Handle).Methods(http.MethodPatch)
	sessions.HandleFunc("/car-form/submit", submitCarForm.Handle).Methods(http.MethodPost)

	// --- Шаг 2: местоположение страхователя ---
	sessions.HandleFunc("/locations/search", searchLocations.Handle).Methods(http.MethodGet)

	// --- Шаг 3: план ---
	sessions.HandleFunc("/plans", listPlans.Handle).Methods(http.MethodGet)
	sessions.HandleFunc("/plans/{planId}/select", selectPlan.Handle).Methods(http.MethodPost)

	// --- Шаг 4: подтверждение ---
	sessions.HandleFunc("/confirmation", getConfirmation.Handle).Methods(http.MethodGet)
	sessions.HandleFunc("/confirmation", confirmQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// REFERENCE ROUTES (сессия в заголовке X-Session-ID)
	// ============================================================

	reference := api.PathPrefix("").Subrouter()
	reference.Use(middleware.Session)

	reference.HandleFunc("/catalog/brands", getBrands.Handle).Methods(http.MethodGet)
	reference.HandleFunc("/catalog/brands/{brandId}/models", getModels.Handle).Methods(http.MethodGet)
	reference.HandleFunc("/catalog/models/{modelId}/versions", getVersions.Handle).Methods(http.MethodGet)
	reference.HandleFunc("/locations/nearby", nearbyLocations.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые задачи хранилища
	stop()

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

// newSessionStorage создаёт хранилище сессий выбранного драйвера.
// Возвращаемая функция освобождает ресурсы хранилища.
func newSessionStorage(ctx context.Context, cfg *config.Config, ttl time.Duration, log *logger.Logger) (session.Storage, func(), error) {
	switch cfg.Session.Driver {
	case config.SessionDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		storage := session.NewPostgresStorage(db, ttl)
		if err := storage.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		go purgeExpired(ctx, storage, log)

		return storage, func() { db.Close() }, nil

	case config.SessionDriverDynamoDB:
		client, err := session.NewDynamoClient(ctx,
			cfg.DynamoDB.Region,
			cfg.DynamoDB.Endpoint,
			cfg.DynamoDB.AccessKeyID,
			cfg.DynamoDB.SecretAccessKey,
		)
		if err != nil {
			return nil, nil, err
		}
		log.Info("DynamoDB session storage initialized (region=%s, table=%s)", cfg.DynamoDB.Region, cfg.DynamoDB.Table)
		return session.NewDynamoStorage(client, cfg.DynamoDB.Table, ttl), func() {}, nil

	default:
		log.Info("In-memory session storage initialized (max_entries=%d)", cfg.Session.MaxEntries)
		return session.NewMemoryStorage(ttl, cfg.Session.MaxEntries), func() {}, nil
	}
}

// purgeExpired периодически удаляет просроченные записи, пока не отменён ctx
func purgeExpired(ctx context.Context, storage *session.PostgresStorage, log *logger.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := storage.PurgeExpired(ctx)
			if err != nil {
				log.Error("Failed to purge expired session entries: %v", err)
				continue
			}
			if removed > 0 {
				log.Info("Purged %d expired session entries", removed)
			}
		}
	}
}
