package catalog

import (
	"context"
	"fmt"

	"github.com/matt-dz/recipematch/internal/database"
	"github.com/matt-dz/recipematch/internal/recipe"
)

// Favourites returns the recipes saved by userID, most recently saved first.
func (c *Catalog) Favourites(ctx context.Context, userID int64) ([]recipe.Favourite, error) {
	if err := c.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := c.db.ListFavouriteRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favourite recipes: %w", err)
	}

	favourites := make([]recipe.Favourite, 0, len(rows))
	for _, row := range rows {
		favourites = append(favourites, recipe.Favourite{
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
			SavedAt: row.SavedAt.Time,
		})
	}
	return favourites, nil
}

func (c *Catalog) SaveFavourite(ctx context.Context, userID, recipeID int64) error {
	if err := c.ensureUser(ctx, userID); err != nil {
		return err
	}

	exists, err := c.db.RecipeExists(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("checking recipe exists: %w", err)
	}
	if !exists {
		return ErrRecipeNotFound
	}

	added, err := c.db.AddFavourite(ctx, database.AddFavouriteParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("adding favourite: %w", err)
	}
	if added == 0 {
		return ErrAlreadyFavourited
	}
	return nil
}

func (c *Catalog) RemoveFavourite(ctx context.Context, userID, recipeID int64) error {
	removed, err := c.db.RemoveFavourite(ctx, database.RemoveFavouriteParams{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("removing favourite: %w", err)
	}
	if removed == 0 {
		return ErrNotFavourited
	}
	return nil
}

func (c *Catalog) ensureUser(ctx context.Context, userID int64) error {
	exists, err := c.db.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("checking user exists: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
