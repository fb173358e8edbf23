package main

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/db"
	httphandler "fleet-service/internal/http"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/logger"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
	"fleet-service/internal/storage"
	"fleet-service/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	userRepo := repository.NewUserRepository(database)
	carRepo := repository.NewCarRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	routeRepo := repository.NewRouteRepository(database)
	tripRepo := repository.NewTripRepository(database)
	preorderRepo := repository.NewPreorderRepository(database)
	ledgerRepo := repository.NewLedgerRepository(database)
	energyRepo := repository.NewEnergyRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	paymentRepo := repository.NewPaymentMethodRepository(database)
	locationRepo := repository.NewLocationRepository(database)

	tokenManager := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	store, err := storage.NewStore(cfg.Upload.Dir, cfg.Upload.BaseURL, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload storage")
	}

	hub := ws.NewHub(log)

	// The external mirror is optional; sync requests fail with 503 when
	// it is not configured.
	var externalDB *gorm.DB
	if cfg.Sync.ExternalDSN != "" {
		externalDB, err = db.OpenExternal(cfg.Sync.ExternalDSN, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to external database")
		}
	}

	authService := service.NewAuthService(userRepo, tokenManager)
	fleetService := service.NewFleetService(carRepo, driverRepo, routeRepo, maintenanceRepo, paymentRepo)
	tripService := service.NewTripService(tripRepo)
	preorderService := service.NewPreorderService(preorderRepo, tripRepo, routeRepo, carRepo, driverRepo)
	financeService := service.NewFinanceService(ledgerRepo, energyRepo, carRepo)
	analyticsService := service.NewAnalyticsService(carRepo, driverRepo, tripRepo, preorderRepo, ledgerRepo, energyRepo, routeRepo)
	locationService := service.NewLocationService(locationRepo, tripRepo, hub)
	syncService := service.NewSyncService(database, externalDB)

	handler := httphandler.NewHandler(
		authService,
		fleetService,
		tripService,
		preorderService,
		financeService,
		analyticsService,
		locationService,
		syncService,
		store,
		hub,
		database,
		cfg.Map.Token,
		log,
	)

	bootstrapLimiter := middleware.NewRateLimiter(cfg.Bootstrap.RateLimit, cfg.Bootstrap.RateWindow)
	router := httphandler.NewRouter(handler, middleware.Auth(tokenManager), bootstrapLimiter, cfg.Upload.Dir, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
