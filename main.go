package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solixmon/internal/canvas"
	"solixmon/internal/config"
	"solixmon/internal/fetchers"
	"solixmon/internal/logger"
	"solixmon/internal/render"
	"solixmon/internal/scheduler"
	"solixmon/internal/server"
	"solixmon/internal/storage"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Global().Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.Global().WithComponent("main")

	log.Info("Starting energy monitor", map[string]interface{}{
		"port":       cfg.Port,
		"source":     cfg.Mode,
		"deployment": cfg.Deployment,
		"interval":   cfg.RefreshInterval.String(),
	})

	source, err := fetchers.FromConfig(cfg)
	if err != nil {
		log.Fatal("Failed to create data source", err)
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize archive storage", err)
	}
	defer store.Close()

	sched := scheduler.New(scheduler.Options{
		Source:   source,
		Renderer: render.New(cfg.PointsPerDay),
		Surface:  canvas.NewImageSurface(render.FrameWidth, render.FrameHeight),
		Interval: cfg.RefreshInterval,
		Points:   cfg.PointsPerDay,
	})
	go sched.Run(ctx)

	srv := server.NewServer(cfg, sched, store)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // report generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", err)
	}
	log.Info("Shutdown complete")
}
