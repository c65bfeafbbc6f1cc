package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"multiservicios/internal/backend"
	"multiservicios/internal/cliente"
	"multiservicios/internal/config"
	"multiservicios/internal/dashboard"
	"multiservicios/internal/factura"
	"multiservicios/internal/fetchlog"
	"multiservicios/internal/fetchlog/repository"
	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/infrastructure/metrics"
	"multiservicios/internal/infrastructure/mysql"
	"multiservicios/internal/pedido"
	"multiservicios/internal/proveedor"
	"multiservicios/internal/server"
	"multiservicios/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var repo fetchlog.Repository
	if cfg.FetchLog.Enabled {
		db, err := mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()

		mysqlRepo := repository.NewMySQLFetchLogRepository(db)
		if err := mysqlRepo.Migrate(context.Background()); err != nil {
			zapLogger.Fatal("migrating fetch log", zap.Error(err))
		}
		repo = mysqlRepo
		zapLogger.Info("fetch log enabled", zap.String("database", cfg.Database.Name))
	}
	fetchLog := fetchlog.NewService(repo, zapLogger)

	m := metrics.New()
	fetcher := backend.NewFetcher(&http.Client{Timeout: cfg.Backends.Timeout}, fetchLog, m, zapLogger)
	clients := backend.NewClients(fetcher, cfg.Backends)

	templates, err := view.NewEngine()
	if err != nil {
		zapLogger.Fatal("parsing templates", zap.Error(err))
	}

	router := server.NewRouter(server.Controllers{
		Dashboard:   dashboard.NewModule(clients, templates, zapLogger),
		Clientes:    cliente.NewModule(clients, templates, zapLogger),
		Pedidos:     pedido.NewModule(clients, templates, zapLogger),
		Proveedores: proveedor.NewModule(clients, templates, zapLogger),
		Facturas:    factura.NewModule(clients, templates, zapLogger),
		Registro:    fetchlog.NewController(fetchLog, templates, zapLogger),
	}, server.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		Templates:          templates,
		Metrics:            m,
		Logger:             zapLogger,
	})

	srv := server.New(cfg.Server, router, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndRun(ctx); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
