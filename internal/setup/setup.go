// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/database"
	"github.com/matt-dz/recipematch/internal/filestore"
	"github.com/matt-dz/recipematch/internal/seed"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(database.Querier) error) error
}

// Database connects to Postgres and applies the schema if it is missing.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	if conf.Database.Database == "" {
		return nil, NewMissingConfigError("DATABASE")
	}

	pool, err := pgxpool.New(ctx, conf.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

func FileStore(conf config.Config) (filestore.FileStore, error) {
	var fs filestore.FileStore
	if conf.Fileserver.Volume == "" {
		return fs, NewMissingConfigError("FILESERVER_VOLUME")
	}
	fileserverPath, err := filepath.Abs(conf.Fileserver.Volume)
	if err != nil {
		return fs, fmt.Errorf("creating fileserver path: %w", err)
	}
	return filestore.New(fileserverPath, conf.Fileserver.URLPrefix, conf.HostOrigin), nil
}

// Seed writes the configured catalog into an empty database. Recipes whose
// local image is missing or unreadable are logged but still seeded.
func Seed(ctx context.Context, logger *slog.Logger, conf config.Config, tx Transactor,
	files filestore.FileStore, fetcher seed.Fetcher,
) error {
	if !conf.Seed.IsEnabled() {
		logger.InfoContext(ctx, "seeding disabled, skipping")
		return nil
	}

	source := conf.Seed.Source
	if source == "" {
		logger.DebugContext(ctx, "loading embedded catalog")
	} else {
		logger.DebugContext(ctx, "loading catalog", slog.String("source", string(source)))
	}
	cat, err := seed.Load(ctx, source, fetcher)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var inserted int
	err = tx.InTx(ctx, func(q database.Querier) error {
		var err error
		inserted, err = seed.Apply(ctx, q, cat)
		return err
	})
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	if inserted == 0 {
		logger.InfoContext(ctx, "catalog already populated, skipping seed")
		return nil
	}
	logger.InfoContext(ctx, "seeded catalog", slog.Int("recipes", inserted))

	for _, ref := range cat.ImageRefs() {
		_, err := files.ImageType(ref)
		switch {
		case err == nil:
		case errors.Is(err, filestore.ErrImageNotFound):
			logger.WarnContext(ctx, "recipe image missing from file store", slog.String("image", ref))
		case errors.Is(err, filestore.ErrUnsupportedMimeType):
			logger.WarnContext(ctx, "recipe image is not a supported image type",
				slog.String("image", ref), slog.Any("error", err))
		default:
			logger.WarnContext(ctx, "failed to check recipe image", slog.String("image", ref), slog.Any("error", err))
		}
	}

	return nil
}
