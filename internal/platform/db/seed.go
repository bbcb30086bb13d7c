package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"sweldo/internal/domain/auth"
	"sweldo/internal/domain/profile"
	"sweldo/internal/platform/config"
)

// Seed ensures the configured admin profile exists. Without seed
// credentials the step is skipped, not failed: a fresh install can still
// register accounts over the API.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	password := cfg.SeedAdminPassword
	if email == "" || password == "" {
		return nil
	}

	store := profile.NewStore(pool)
	if _, err := store.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, profile.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = store.Create(ctx, email, hash, cfg.SeedAdminName, auth.RoleAdmin)
	if errors.Is(err, profile.ErrEmailTaken) {
		return nil
	}
	return err
}
