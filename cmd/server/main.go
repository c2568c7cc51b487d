package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthcast-backend/internal/adapter/grpc"
	"github.com/simaogato/wealthcast-backend/internal/adapter/repository/sqlstore"
	"github.com/simaogato/wealthcast-backend/internal/adapter/rest"
	"github.com/simaogato/wealthcast-backend/internal/config"
	"github.com/simaogato/wealthcast-backend/internal/usecase/asset"
	"github.com/simaogato/wealthcast-backend/internal/usecase/forecast"
	"github.com/simaogato/wealthcast-backend/internal/usecase/ledger"
	"github.com/simaogato/wealthcast-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Setup Database
	if cfg.Database.Migrate {
		if err := migrateWithRetry(cfg.Database.Driver, cfg.Database.DSN); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Database schema is up to date")
	}

	db, err := sqlstore.NewDB(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 3. Initialize Repositories
	assetRepo := sqlstore.NewAssetRepository(db)
	transactionRepo := sqlstore.NewTransactionRepository(db)

	// 4. Initialize Services (Use Cases)
	forecastService := forecast.NewForecastService(assetRepo, transactionRepo)
	assetService := asset.NewAssetService(assetRepo)
	ledgerService := ledger.NewLedgerService(assetRepo, transactionRepo)

	if cfg.Seed.Demo {
		demoSeeder := seeder.NewDemoSeeder(assetRepo, transactionRepo)
		if err := demoSeeder.Seed(context.Background(), time.Now()); err != nil {
			log.Fatalf("Failed to seed demo portfolio: %v", err)
		}
		log.Println("Demo portfolio seeded successfully")
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.RecoveryInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)
	grpcadapter.RegisterForecastServiceServer(grpcServer, grpcadapter.NewServer(forecastService, assetService, ledgerService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCAddr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// 6. Start HTTP Server (optional)
	var httpServer *http.Server
	if cfg.Server.HTTPAddr != "" {
		api := rest.NewServer(forecastService, assetService, ledgerService, cfg.Server.APIToken, logger)
		httpServer = &http.Server{
			Addr:              cfg.Server.HTTPAddr,
			Handler:           api.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			log.Printf("HTTP server listening on %s", cfg.Server.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to serve HTTP server: %v", err)
			}
		}()
	}

	// Graceful shutdown
	waitForShutdown(grpcServer, httpServer)
}

// migrateWithRetry applies migrations, retrying while the database starts up
func migrateWithRetry(driver, dsn string) error {
	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		if err = sqlstore.Migrate(driver, dsn); err == nil {
			return nil
		}
		log.Printf("Migration attempt %d failed: %v", attempt, err)
		time.Sleep(2 * time.Second)
	}
	return err
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(grpcServer *grpclib.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}
		log.Println("HTTP server stopped")
	}

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
