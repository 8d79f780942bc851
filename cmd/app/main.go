package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codewithjaspreet/og-backend/internal/config"
	"github.com/codewithjaspreet/og-backend/internal/email"
	"github.com/codewithjaspreet/og-backend/internal/gym"
	"github.com/codewithjaspreet/og-backend/internal/identity"
	"github.com/codewithjaspreet/og-backend/internal/logger"
	"github.com/codewithjaspreet/og-backend/internal/server"
	"github.com/codewithjaspreet/og-backend/internal/store"
	"github.com/codewithjaspreet/og-backend/internal/user"
)

// @title Organized Gym API
// @version 1.0
// @description Backend API for gym, plan, and member management.
// @host localhost:8080
// @BasePath /
func main() {

	logger.Init()
	logger.Info("Starting Organized Gym application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Connecting to Firestore...")
	clients, err := store.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer clients.Close()
	logger.Info("Firestore connected")

	emailService := email.New(cfg)
	defer emailService.Close()
	logger.Info("Email service initialized")
	go emailService.Start(ctx)

	gymService := gym.NewService(gym.NewRepository(clients.Firestore))
	userService := user.NewService(
		user.NewRepository(clients.Firestore),
		gymService,
		identity.NewFirebaseProvider(clients.Auth),
		emailService,
	)

	srv := server.New(cfg, gym.NewHandler(gymService), user.NewHandler(userService))

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
