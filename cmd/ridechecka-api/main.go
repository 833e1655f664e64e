// Entry point: loads config, wires collaborators, starts the HTTP server.
// Postgres, redis and the maps provider are all optional; without them the
// engine serves model-only estimates calibrated by this process's own
// reports.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Thelma101/RideChecka-sub001/internal/config"
	routes "github.com/Thelma101/RideChecka-sub001/internal/http"
	"github.com/Thelma101/RideChecka-sub001/internal/infra"
	"github.com/Thelma101/RideChecka-sub001/internal/maps"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/catalog"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/estimate"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/pricing"
	"github.com/Thelma101/RideChecka-sub001/internal/modules/reports"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	deps := estimate.Deps{
		Catalog: cat,
		Calc:    pricing.NewCalculator(),
		Log:     log,
	}

	localReports := reports.NewLocalStore()
	var remoteReports reports.Store

	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer dbPool.Close()

		remoteReports = reports.NewPGStore(dbPool)
		deps.History = estimate.NewPGHistorySink(dbPool)

		var overrides estimate.OverrideSource = estimate.NewPGOverrideSource(dbPool)
		if cfg.Redis.Addr != "" {
			overrides = estimate.NewCachedOverrideSource(overrides, infra.NewRedis(cfg.Redis.Addr))
		}
		deps.Overrides = overrides
	} else {
		log.Info("no database configured, running local-only")
	}

	deps.Reports = reports.NewService(localReports, remoteReports, log)

	if cfg.Maps.APIKey != "" {
		routeService, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps: %v", err)
		}
		deps.Distance = routeService
	}

	estimateSvc := estimate.NewService(deps)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: routes.NewRouter(estimateSvc, cat, log),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
