package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domainAppointment "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domainCustomer "github.com/BruksfildServices01/salon-scheduler/internal/domain/customer"
	domainPayment "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/gateway"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
)

func main() {
	cfg, err := config.Load(os.Getenv("SALON_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	// ------------------------------------------------------
	// booking lock
	// ------------------------------------------------------
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	var locker domainAppointment.Locker
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zl.Warn("redis unavailable, using in-process booking lock", zap.Error(err))
		locker = lock.NewLocalLocker()
	} else {
		locker = lock.NewRedisLocker(rdb, cfg.Redis.LockTTL, zl)
	}

	// ------------------------------------------------------
	// optional integrations
	// ------------------------------------------------------
	var objects domainCustomer.ObjectStore
	if cfg.Storage.Enabled() {
		objects = storage.NewS3Store(cfg.Storage)
	} else {
		zl.Info("storage not configured, customer import disabled")
	}

	var payments domainPayment.Gateway
	if cfg.Payments.Enabled() {
		mp, err := gateway.NewMercadoPago(cfg.Payments.MercadoPagoToken)
		if err != nil {
			zl.Fatal("payments", zap.Error(err))
		}
		payments = mp
	} else {
		zl.Info("payments not configured, charges disabled")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	dispatcher := audit.NewDispatcher(audit.NewStore(db), zl)

	// ------------------------------------------------------
	// http
	// ------------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if m != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     zl,
		Metrics: m,
		Audit:   dispatcher,
		Locker:  locker,
		Objects: objects,
		Gateway: payments,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}

	if err := dispatcher.Close(ctx); err != nil {
		zl.Warn("audit queue not drained", zap.Error(err))
	}

	zl.Info("server stopped")
}
