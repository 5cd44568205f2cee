package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	"github.com/BruksfildServices01/pro-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/pro-booking/internal/db"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/pro-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pro-booking/internal/infra/storage"
	"github.com/BruksfildServices01/pro-booking/internal/logs"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/routes"
	"github.com/BruksfildServices01/pro-booking/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logs.New(cfg)

	if !timezone.IsValid(cfg.Timezone) {
		log.Error("invalid OPERATING_TIMEZONE", slog.String("timezone", cfg.Timezone))
		os.Exit(1)
	}
	loc := timezone.Location(cfg.Timezone)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("database", slog.Any("error", err))
		os.Exit(1)
	}

	// --------------------------------------------------
	// Lock de reserva: Redis se configurado, senão em memória
	// --------------------------------------------------
	var locker lock.Locker
	if cfg.RedisAddr != "" {
		client, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Error("redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, cfg.LockTTL, log).WithWait(cfg.LockWait)
		log.Info("booking lock: redis", slog.String("addr", cfg.RedisAddr))
	} else {
		locker = lock.NewKeyedMutex().WithWait(cfg.LockWait)
		log.Info("booking lock: in-process")
	}

	// --------------------------------------------------
	// Índice geográfico
	// --------------------------------------------------
	index := geo.NewIndex()
	locations := infraRepo.NewProfessionalGormRepository(db)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	err = index.Load(loadCtx, locations)
	cancelLoad()
	if err != nil {
		log.Error("geo index", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("geo index loaded",
		slog.Int("professionals", index.Len()),
		slog.Duration("refresh", cfg.GeoIndexRefresh),
	)

	// outras instâncias também gravam localização
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go index.RefreshEvery(refreshCtx, locations, cfg.GeoIndexRefresh, log)

	images, err := storage.NewImageResolver(cfg)
	if err != nil {
		log.Error("image storage", slog.Any("error", err))
		os.Exit(1)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Log:      log,
		Location: loc,
		Locker:   locker,
		Audit:    dispatcher,
		Metrics:  m,
		GeoIndex: index,
		Images:   images,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", slog.Any("error", err))
	}

	stopRefresh()

	// grava os eventos de auditoria pendentes
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
