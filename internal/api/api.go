// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/matt-dz/recipematch/docs"
	"github.com/matt-dz/recipematch/internal/api/middleware"
	"github.com/matt-dz/recipematch/internal/api/routes/favourites"
	"github.com/matt-dz/recipematch/internal/api/routes/ping"
	"github.com/matt-dz/recipematch/internal/api/routes/recipes"
	"github.com/matt-dz/recipematch/internal/api/routes/reference"
	"github.com/matt-dz/recipematch/internal/env"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addDocs(r chi.Router, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)
	r.Get("/api/swagger/*", swagger)
}

func addRoutes(router chi.Router, env *env.Env) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Get("/ingredients", reference.ListIngredients)
		r.Get("/dietary-restrictions", reference.ListDietaryRestrictions)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.ListRecipes)
			r.Get("/trending", recipes.GetTrendingRecipes)
			r.With(middleware.RateLimit(env.Config.RateLimit.Requests)).Post("/match", recipes.MatchRecipes)
			r.Get("/{recipeID}", recipes.GetRecipe)
			r.Get("/{recipeID}/dietary-restrictions", recipes.GetRecipeDietaryRestrictions)
		})

		r.Route("/favourites/{userID}", func(r chi.Router) {
			r.Get("/", favourites.ListFavourites)
			r.Post("/recipes", favourites.SaveFavourite)
			r.Delete("/recipes/{recipeID}", favourites.RemoveFavourite)
		})
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Handle(env.FileStore.URLPrefix()+"/*", env.FileStore.Handler())
}

// NewRouter builds the API handler around env.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.Instrument)
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.Cors(env.Config))
	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed)

	addRoutes(router, env)
	addDocs(router, fmt.Sprintf("localhost:%d", env.Config.Server.Port))
	return router
}

// Start godoc
//
//	@title			RecipeMatch API
//	@version		1.0
//	@description	Recipe catalog that matches recipes against the ingredients a user has on hand.
//
//	@host			localhost:8080
//	@BasePath		/
func Start(ctx context.Context, env *env.Env) error {
	addr := fmt.Sprintf(":%d", env.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0%s", addr))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0%s/api/swagger/index.html", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
