// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/recipematch/internal/catalog"
	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/database"
	"github.com/matt-dz/recipematch/internal/filestore"
	"github.com/matt-dz/recipematch/internal/http"
	"github.com/matt-dz/recipematch/internal/log"
	"github.com/matt-dz/recipematch/internal/matching"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger    *slog.Logger
	Config    config.Config
	Database  *database.Database
	Catalog   *catalog.Catalog
	Matcher   *matching.Engine
	FileStore filestore.FileStore
	HTTP      *http.HTTP
}

// New wires the catalog and matcher on top of db. A nil logger is replaced
// with one that discards everything.
func New(logger *slog.Logger, conf config.Config, db *database.Database, files filestore.FileStore,
	client *http.HTTP,
) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}
	e := &Env{
		Logger:    logger,
		Config:    conf,
		Database:  db,
		FileStore: files,
		HTTP:      client,
	}
	if db != nil {
		e.UseQuerier(db.Querier)
	}
	return e
}

// UseQuerier rebuilds the catalog and matcher on top of q.
func (e *Env) UseQuerier(q database.Querier) {
	e.Catalog = catalog.New(q)
	e.Matcher = matching.New(e.Catalog)
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx returns the Env stored in ctx, or Null() if there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok && e != nil {
		return e
	}
	return Null()
}
