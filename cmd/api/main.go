package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donatehub/internal/adapter/memrepo"
	"donatehub/internal/adapter/repo"
	"donatehub/internal/domain"
	"donatehub/internal/http/handlers"
	"donatehub/internal/http/httpapi"
	"donatehub/internal/infra"
	"donatehub/internal/infra/geoip"
	"donatehub/internal/middleware"
	"donatehub/internal/seed"
	"donatehub/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	var (
		campaigns  domain.CampaignRepository
		donations  domain.DonationRepository
		users      domain.UserRepository
		categories domain.CategoryRepository
	)
	switch cfg.StoreDriver {
	case infra.StoreDriverPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		campaigns = repo.NewCampaignRepository(pool)
		donations = repo.NewDonationRepository(pool)
		users = repo.NewUserRepository(pool)
		categories = repo.NewCategoryRepository(pool)
	default:
		store := memrepo.New()
		campaigns = store.Campaigns()
		donations = store.Donations()
		users = store.Users()
		categories = store.Categories()
	}
	logger.Info().Str("driver", cfg.StoreDriver).Msg("store initialized")

	if err := seed.Apply(ctx, campaigns, categories, cfg.SeedDemoData); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed store")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Campaigns:   service.NewCampaigns(campaigns, users),
		Ledger:      service.NewLedger(donations, campaigns, logger),
		Stats:       service.NewStats(campaigns, donations),
		Identity:    service.NewIdentity(users, cfg.JWTSecret, logger),
		Categories:  categories,
		Logger:      logger,
		MinDonation: cfg.MinDonation,
	}

	router := httpapi.NewRouter(app, cfg, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
