package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nloira/criblprobe/internal/adapters/profile"
	"github.com/nloira/criblprobe/internal/config"
	"github.com/nloira/criblprobe/internal/domain"
	"github.com/nloira/criblprobe/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	store *profile.Store
	log   zerolog.Logger
}

func wireApp() (*app, error) {
	store, err := profile.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile store: %w", err)
	}

	return &app{
		store: store,
		log:   logger.New(os.Stderr),
	}, nil
}

// resolveCredentials reads the environment and, when a profile is named,
// fills still-unconfigured fields from the store. Environment always wins.
func resolveCredentials(ctx context.Context, app *app, profileName string) (domain.Credentials, error) {
	creds := config.Resolve(viper.New())
	if profileName == "" {
		return creds, nil
	}

	stored, err := app.store.Get(ctx, profileName)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("load profile: %w", err)
	}

	return config.ApplyProfile(creds, stored), nil
}
