// Package seed loads the initial recipe catalog and writes it into an empty
// database.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/database"
	"github.com/matt-dz/recipematch/internal/metrics"
)

//go:embed catalog.json
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Ingredient struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
}

type DietaryRestriction struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
}

type User struct {
	ID       int64  `json:"id" validate:"gt=0"`
	Username string `json:"username" validate:"required"`
}

type Recipe struct {
	ID                    int64     `json:"id" validate:"gt=0"`
	Name                  string    `json:"name" validate:"required"`
	Description           string    `json:"description"`
	Instructions          string    `json:"instructions"`
	CookTime              int32     `json:"cook_time" validate:"gte=0"`
	Difficulty            string    `json:"difficulty" validate:"required"`
	Image                 string    `json:"image"`
	CreatedAt             time.Time `json:"created_at" validate:"required"`
	IngredientIDs         []int64   `json:"ingredient_ids" validate:"dive,gt=0"`
	DietaryRestrictionIDs []int64   `json:"dietary_restriction_ids" validate:"dive,gt=0"`
}

type Favourite struct {
	UserID   int64 `json:"user_id" validate:"gt=0"`
	RecipeID int64 `json:"recipe_id" validate:"gt=0"`
}

// Catalog is the full dataset written on first start.
type Catalog struct {
	Ingredients         []Ingredient         `json:"ingredients" validate:"dive"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions" validate:"dive"`
	Users               []User               `json:"users" validate:"dive"`
	Recipes             []Recipe             `json:"recipes" validate:"dive"`
	Favourites          []Favourite          `json:"favourites" validate:"dive"`
}

// Fetcher downloads a remote catalog.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Load reads the catalog named by source. An empty source selects the
// embedded catalog and remote sources are downloaded with fetcher.
func Load(ctx context.Context, source config.SeedSource, fetcher Fetcher) (Catalog, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case source == "":
		data = defaultCatalog
	case source.IsRemote():
		if fetcher == nil {
			return Catalog{}, errors.New("no fetcher for remote catalog")
		}
		data, err = fetcher.Fetch(ctx, string(source))
		if err != nil {
			return Catalog{}, fmt.Errorf("fetching catalog: %w", err)
		}
	default:
		data, err = os.ReadFile(string(source))
		if err != nil {
			return Catalog{}, fmt.Errorf("reading catalog: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a JSON catalog.
func Parse(data []byte) (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := Validate(cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks field constraints, duplicate ids and that every reference
// points at an entry in the catalog.
func Validate(cat Catalog) error {
	if err := validator.New().Struct(cat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var errs []error
	ingredients := idSet(cat.Ingredients, func(i Ingredient) int64 { return i.ID }, "ingredient", &errs)
	restrictions := idSet(cat.DietaryRestrictions, func(d DietaryRestriction) int64 { return d.ID }, "dietary restriction", &errs)
	users := idSet(cat.Users, func(u User) int64 { return u.ID }, "user", &errs)
	recipes := idSet(cat.Recipes, func(r Recipe) int64 { return r.ID }, "recipe", &errs)

	for _, r := range cat.Recipes {
		for _, id := range r.IngredientIDs {
			if _, ok := ingredients[id]; !ok {
				errs = append(errs, fmt.Errorf("recipe %d references unknown ingredient %d", r.ID, id))
			}
		}
		for _, id := range r.DietaryRestrictionIDs {
			if _, ok := restrictions[id]; !ok {
				errs = append(errs, fmt.Errorf("recipe %d references unknown dietary restriction %d", r.ID, id))
			}
		}
	}

	type pair struct{ user, recipe int64 }
	seen := make(map[pair]struct{}, len(cat.Favourites))
	for _, f := range cat.Favourites {
		if _, ok := users[f.UserID]; !ok {
			errs = append(errs, fmt.Errorf("favourite references unknown user %d", f.UserID))
		}
		if _, ok := recipes[f.RecipeID]; !ok {
			errs = append(errs, fmt.Errorf("favourite references unknown recipe %d", f.RecipeID))
		}
		p := pair{f.UserID, f.RecipeID}
		if _, ok := seen[p]; ok {
			errs = append(errs, fmt.Errorf("duplicate favourite %d/%d", f.UserID, f.RecipeID))
		}
		seen[p] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func idSet[T any](items []T, id func(T) int64, kind string, errs *[]error) map[int64]struct{} {
	set := make(map[int64]struct{}, len(items))
	for _, item := range items {
		k := id(item)
		if _, ok := set[k]; ok {
			*errs = append(*errs, fmt.Errorf("duplicate %s id %d", kind, k))
		}
		set[k] = struct{}{}
	}
	return set
}

// Apply writes cat through q. Nothing is written when the database already
// holds recipes, in which case Apply returns 0.
func Apply(ctx context.Context, q database.Querier, cat Catalog) (int, error) {
	count, err := q.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, u := range cat.Users {
		if err := q.InsertUser(ctx, database.InsertUserParams{ID: u.ID, Username: u.Username}); err != nil {
			return 0, fmt.Errorf("inserting user %d: %w", u.ID, err)
		}
	}
	for _, i := range cat.Ingredients {
		if err := q.InsertIngredient(ctx, database.InsertIngredientParams{ID: i.ID, Name: i.Name}); err != nil {
			return 0, fmt.Errorf("inserting ingredient %d: %w", i.ID, err)
		}
	}
	for _, d := range cat.DietaryRestrictions {
		if err := q.InsertDietaryRestriction(ctx, database.InsertDietaryRestrictionParams{ID: d.ID, Name: d.Name}); err != nil {
			return 0, fmt.Errorf("inserting dietary restriction %d: %w", d.ID, err)
		}
	}
	for _, r := range cat.Recipes {
		if err := insertRecipe(ctx, q, r); err != nil {
			return 0, err
		}
	}
	for _, f := range cat.Favourites {
		if _, err := q.AddFavourite(ctx, database.AddFavouriteParams{UserID: f.UserID, RecipeID: f.RecipeID}); err != nil {
			return 0, fmt.Errorf("inserting favourite %d/%d: %w", f.UserID, f.RecipeID, err)
		}
	}
	if err := q.ResetSequences(ctx); err != nil {
		return 0, fmt.Errorf("resetting sequences: %w", err)
	}

	metrics.SetSeededRecipes(len(cat.Recipes))
	return len(cat.Recipes), nil
}

func insertRecipe(ctx context.Context, q database.Querier, r Recipe) error {
	err := q.InsertRecipe(ctx, database.InsertRecipeParams{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Instructions: text(r.Instructions),
		CookTime:     r.CookTime,
		Difficulty:   r.Difficulty,
		ImageUrl:     text(r.Image),
		CreatedAt:    pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("inserting recipe %d: %w", r.ID, err)
	}
	for _, id := range r.IngredientIDs {
		err := q.InsertRecipeIngredient(ctx, database.InsertRecipeIngredientParams{RecipeID: r.ID, IngredientID: id})
		if err != nil {
			return fmt.Errorf("linking recipe %d to ingredient %d: %w", r.ID, id, err)
		}
	}
	for _, id := range r.DietaryRestrictionIDs {
		err := q.InsertRecipeDietaryRestriction(ctx, database.InsertRecipeDietaryRestrictionParams{
			RecipeID:             r.ID,
			DietaryRestrictionID: id,
		})
		if err != nil {
			return fmt.Errorf("linking recipe %d to dietary restriction %d: %w", r.ID, id, err)
		}
	}
	return nil
}

// ImageRefs returns the non-empty image references of the catalog's recipes.
func (c Catalog) ImageRefs() []string {
	refs := make([]string, 0, len(c.Recipes))
	for _, r := range c.Recipes {
		if r.Image != "" {
			refs = append(refs, r.Image)
		}
	}
	return refs
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
