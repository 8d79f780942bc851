// Package store initializes the Firestore and Firebase Auth handles used by
// the repositories. Clients are created once at startup and injected; a
// service-account key file is preferred when present, with a fallback to
// ambient application-default credentials.
package store

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/codewithjaspreet/og-backend/internal/config"
	"github.com/codewithjaspreet/og-backend/internal/logger"
)

// Collection names in Firestore.
const (
	CollectionGyms     = "gym"
	CollectionGymPlans = "gym_plans"
	CollectionUsers    = "users"
)

type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	app, err := newApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	return &Clients{Firestore: fs, Auth: authClient}, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: cfg.ProjectID}

	if cfg.ServiceAccountFile != "" {
		if _, err := os.Stat(cfg.ServiceAccountFile); err == nil {
			logger.Info("Firebase initialized with service account", "file", cfg.ServiceAccountFile)
			return firebase.NewApp(ctx, conf, option.WithCredentialsFile(cfg.ServiceAccountFile))
		}
	}

	logger.Info("Firebase initialized with default credentials")
	return firebase.NewApp(ctx, conf)
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
