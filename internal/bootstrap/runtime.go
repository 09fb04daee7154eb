// Package bootstrap wires shared runtime dependencies for commands and tests.
package bootstrap

import (
	"fmt"

	"blogwave/internal/cache"
	"blogwave/internal/config"
	"blogwave/internal/database"
	"blogwave/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
	FixturesPath string
}

// InitRuntime connects to DB and Redis and optionally runs seeding.
// The Redis client may be nil when the server is unreachable; callers must
// treat caching and rate limiting as best-effort in that case.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	if opts.FixturesPath != "" {
		if err := seed.ApplyFixtures(db, opts.FixturesPath); err != nil {
			return nil, nil, fmt.Errorf("failed to apply fixtures: %w", err)
		}
	}

	return db, r, nil
}
