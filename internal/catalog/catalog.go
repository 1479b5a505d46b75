// Package catalog reads and updates the recipe catalog stored in Postgres.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/recipematch/internal/database"
	"github.com/matt-dz/recipematch/internal/ordering"
	"github.com/matt-dz/recipematch/internal/recipe"
)

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyFavourited = errors.New("recipe already favourited")
	ErrNotFavourited     = errors.New("recipe not favourited")
)

type Catalog struct {
	db database.Querier
}

func New(db database.Querier) *Catalog {
	return &Catalog{db: db}
}

// FetchRecipesWithAssociations returns every recipe satisfying all of
// restrictionIDs, in ascending id order.
func (c *Catalog) FetchRecipesWithAssociations(ctx context.Context, restrictionIDs []int64) ([]recipe.Record, error) {
	if restrictionIDs == nil {
		restrictionIDs = []int64{}
	}
	rows, err := c.db.ListRecipesWithAssociations(ctx, restrictionIDs)
	if err != nil {
		return nil, fmt.Errorf("listing recipes with associations: %w", err)
	}

	records := make([]recipe.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recipe.Record{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			CookTime:       row.CookTime,
			Difficulty:     row.Difficulty,
			CreatedAt:      row.CreatedAt.Time,
			ImageURL:       textPtr(row.ImageUrl),
			FetchCount:     row.FetchCount,
			IngredientIDs:  row.IngredientIds,
			RestrictionIDs: row.RestrictionIds,
			FavouritedBy:   row.FavouritedBy,
		})
	}
	return records, nil
}

func (c *Catalog) ResolveIngredientNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	rows, err := c.db.GetIngredientNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("getting ingredient names: %w", err)
	}
	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func (c *Catalog) ResolveRestrictionNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	rows, err := c.db.GetDietaryRestrictionNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("getting dietary restriction names: %w", err)
	}
	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// ListRecipes returns every recipe ordered by s. Recipes that compare equal
// stay in id order.
func (c *Catalog) ListRecipes(ctx context.Context, s ordering.Sort) ([]recipe.Summary, error) {
	rows, err := c.db.ListRecipeDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	summaries := make([]recipe.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summarize(database.GetRecipeDetailRow(row)))
	}
	ordering.Apply(summaries, s, summaryFields)
	return summaries, nil
}

// GetRecipe returns a single recipe and counts the fetch towards its
// trending rank.
func (c *Catalog) GetRecipe(ctx context.Context, id int64) (recipe.Summary, error) {
	if _, err := c.db.IncrementRecipeFetchCount(ctx, id); errors.Is(err, pgx.ErrNoRows) {
		return recipe.Summary{}, ErrRecipeNotFound
	} else if err != nil {
		return recipe.Summary{}, fmt.Errorf("incrementing fetch count: %w", err)
	}

	row, err := c.db.GetRecipeDetail(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return recipe.Summary{}, ErrRecipeNotFound
	} else if err != nil {
		return recipe.Summary{}, fmt.Errorf("getting recipe: %w", err)
	}
	return summarize(row), nil
}

func (c *Catalog) RecipeDietaryRestrictions(ctx context.Context, id int64) ([]string, error) {
	exists, err := c.db.RecipeExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("checking recipe exists: %w", err)
	}
	if !exists {
		return nil, ErrRecipeNotFound
	}

	names, err := c.db.GetRecipeDietaryRestrictions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe dietary restrictions: %w", err)
	}
	return nonNil(names), nil
}

// Trending returns up to limit recipes by fetch count, most fetched first.
// IsFavourite is set relative to userID.
func (c *Catalog) Trending(ctx context.Context, userID int64, limit int32) ([]recipe.Trending, error) {
	rows, err := c.db.ListTrendingRecipes(ctx, database.ListTrendingRecipesParams{
		UserID:   userID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing trending recipes: %w", err)
	}

	trending := make([]recipe.Trending, 0, len(rows))
	for _, row := range rows {
		trending = append(trending, recipe.Trending{
			Summary: summarize(database.GetRecipeDetailRow{
				ID:                  row.ID,
				Name:                row.Name,
				Description:         row.Description,
				Instructions:        row.Instructions,
				CookTime:            row.CookTime,
				Difficulty:          row.Difficulty,
				ImageUrl:            row.ImageUrl,
				FetchCount:          row.FetchCount,
				CreatedAt:           row.CreatedAt,
				Ingredients:         row.Ingredients,
				DietaryRestrictions: row.DietaryRestrictions,
			}),
			FetchCount:  row.FetchCount,
			IsFavourite: row.IsFavourite,
		})
	}
	return trending, nil
}

func (c *Catalog) Ingredients(ctx context.Context) ([]recipe.Ingredient, error) {
	rows, err := c.db.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	ingredients := make([]recipe.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, recipe.Ingredient{ID: row.ID, Name: row.Name})
	}
	return ingredients, nil
}

func (c *Catalog) DietaryRestrictions(ctx context.Context) ([]recipe.DietaryRestriction, error) {
	rows, err := c.db.ListDietaryRestrictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dietary restrictions: %w", err)
	}
	restrictions := make([]recipe.DietaryRestriction, 0, len(rows))
	for _, row := range rows {
		restrictions = append(restrictions, recipe.DietaryRestriction{ID: row.ID, Name: row.Name})
	}
	return restrictions, nil
}

func summarize(row database.GetRecipeDetailRow) recipe.Summary {
	return recipe.Summary{
		RecipeID:            row.ID,
		Name:                row.Name,
		Description:         row.Description,
		CookTime:            row.CookTime,
		Difficulty:          row.Difficulty,
		CreatedAt:           row.CreatedAt.Time,
		Img:                 textPtr(row.ImageUrl),
		Instructions:        textPtr(row.Instructions),
		DietaryRestrictions: nonNil(row.DietaryRestrictions),
		Ingredients:         nonNil(row.Ingredients),
	}
}

func summaryFields(s recipe.Summary) ordering.Fields {
	return ordering.Fields{
		CreatedAt:  s.CreatedAt,
		CookTime:   s.CookTime,
		Difficulty: s.Difficulty,
	}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
