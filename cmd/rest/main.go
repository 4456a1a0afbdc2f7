package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"neurostudy-be/internal/bootstrap"
	"neurostudy-be/internal/config"
	"neurostudy-be/internal/model"
	"neurostudy-be/internal/server"
	"neurostudy-be/internal/tracer"
	"neurostudy-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(tracer.Options{
		Enabled:  cfg.App.OtelEnabled,
		Endpoint: cfg.App.OtelEndpoint,
	})
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(database.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: database.LevelFor(cfg.IsProduction()),
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// Tables are created on boot, same as CREATE TABLE IF NOT EXISTS.
	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		log.Panicf("Unable to migrate GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start Background Services
	if err := container.StartBackground(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
