package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matt-dz/recipematch/internal/ordering"
)

// ErrUnresolvedName is returned when a recipe references an ingredient or
// dietary restriction that the catalog has no name for.
var ErrUnresolvedName = errors.New("unresolved catalog name")

// Result is a matched recipe as returned to callers.
type Result struct {
	RecipeID                 int64     `json:"recipe_id"`
	Name                     string    `json:"name"`
	Description              string    `json:"description"`
	CookTime                 int32     `json:"cook_time"`
	Difficulty               string    `json:"difficulty"`
	CreatedAt                time.Time `json:"created_at"`
	Img                      *string   `json:"img"`
	MatchPercentage          int       `json:"match_percentage"`
	TotalIngredientsRequired int       `json:"total_ingredients_required"`
	IngredientsMatched       int       `json:"ingredients_matched"`
	IsFavourite              bool      `json:"is_favourite"`
	MatchedIngredients       []string  `json:"matched_ingredients"`
	MissingIngredients       []string  `json:"missing_ingredients"`
	DietaryRestrictions      []string  `json:"dietary_restrictions"`
}

func (r Result) sortFields() ordering.Fields {
	return ordering.Fields{
		MatchPercentage: r.MatchPercentage,
		CreatedAt:       r.CreatedAt,
		CookTime:        r.CookTime,
		Difficulty:      r.Difficulty,
	}
}

// project resolves the ids held by each candidate to display names. Names
// are fetched with one call per kind for the whole batch.
func project(ctx context.Context, store Store, candidates []candidate) ([]Result, error) {
	results := make([]Result, 0, len(candidates))
	if len(candidates) == 0 {
		return results, nil
	}

	ingredientIDs, restrictionIDs := make(IDSet), make(IDSet)
	for _, c := range candidates {
		for _, id := range c.record.IngredientIDs {
			ingredientIDs[id] = struct{}{}
		}
		for _, id := range c.record.RestrictionIDs {
			restrictionIDs[id] = struct{}{}
		}
	}

	var ingredientNames, restrictionNames map[int64]string
	g, gctx := errgroup.WithContext(ctx)
	if len(ingredientIDs) > 0 {
		g.Go(func() error {
			names, err := store.ResolveIngredientNames(gctx, ingredientIDs.Sorted())
			if err != nil {
				return fmt.Errorf("resolving ingredient names: %w", err)
			}
			ingredientNames = names
			return nil
		})
	}
	if len(restrictionIDs) > 0 {
		g.Go(func() error {
			names, err := store.ResolveRestrictionNames(gctx, restrictionIDs.Sorted())
			if err != nil {
				return fmt.Errorf("resolving dietary restriction names: %w", err)
			}
			restrictionNames = names
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range candidates {
		matched, err := lookupNames("ingredient", c.score.Matched, ingredientNames)
		if err != nil {
			return nil, fmt.Errorf("projecting recipe %d: %w", c.record.ID, err)
		}
		missing, err := lookupNames("ingredient", c.score.Missing, ingredientNames)
		if err != nil {
			return nil, fmt.Errorf("projecting recipe %d: %w", c.record.ID, err)
		}
		restrictions, err := lookupNames("dietary restriction", c.record.RestrictionIDs, restrictionNames)
		if err != nil {
			return nil, fmt.Errorf("projecting recipe %d: %w", c.record.ID, err)
		}

		results = append(results, Result{
			RecipeID:                 c.record.ID,
			Name:                     c.record.Name,
			Description:              c.record.Description,
			CookTime:                 c.record.CookTime,
			Difficulty:               c.record.Difficulty,
			CreatedAt:                c.record.CreatedAt,
			Img:                      c.record.ImageURL,
			MatchPercentage:          c.score.Percentage,
			TotalIngredientsRequired: c.score.TotalRequired,
			IngredientsMatched:       c.score.MatchedCount(),
			IsFavourite:              c.favourite,
			MatchedIngredients:       matched,
			MissingIngredients:       missing,
			DietaryRestrictions:      restrictions,
		})
	}

	return results, nil
}

func lookupNames(kind string, ids []int64, names map[int64]string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			return nil, fmt.Errorf("%s %d: %w", kind, id, ErrUnresolvedName)
		}
		out = append(out, name)
	}
	return out, nil
}
