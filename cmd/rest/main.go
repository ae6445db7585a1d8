package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"medinfo-be/internal/bootstrap"
	"medinfo-be/internal/config"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/server"
	"medinfo-be/internal/tracer"
	"medinfo-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// Tracing stays a no-op unless OTEL_ENABLED=true
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.GetMigrator(gormDB).Migrate(); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	if container.ActivityService != nil {
		if err := container.ActivityService.Start(ctx); err != nil {
			sysLogger.Warn("Main", "Activity feed not started", map[string]interface{}{"error": err.Error()})
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container, sysLogger)

	go func() {
		<-ctx.Done()
		sysLogger.Info("Main", "Shutting down", nil)
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		sysLogger.Error("Main", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
