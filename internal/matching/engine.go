// Package matching scores recipes against the ingredients a user has on
// hand and the dietary restrictions they need to honour.
package matching

import (
	"context"
	"fmt"

	"github.com/matt-dz/recipematch/internal/ordering"
	"github.com/matt-dz/recipematch/internal/recipe"
)

// Store is the read side of the recipe catalog.
type Store interface {
	// FetchRecipesWithAssociations returns recipes in ascending id order.
	// Implementations may use restrictionIDs to drop recipes that do not
	// satisfy every listed restriction.
	FetchRecipesWithAssociations(ctx context.Context, restrictionIDs []int64) ([]recipe.Record, error)
	ResolveIngredientNames(ctx context.Context, ids []int64) (map[int64]string, error)
	ResolveRestrictionNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type Query struct {
	UserID                int64
	IngredientIDs         []int64
	DietaryRestrictionIDs []int64
	Sort                  ordering.Sort
}

// Engine matches recipes from a Store. It keeps no state between calls and
// is safe for concurrent use.
type Engine struct {
	store Store
}

func New(store Store) *Engine {
	return &Engine{store: store}
}

type candidate struct {
	record    recipe.Record
	score     Score
	favourite bool
}

// MatchRecipes returns every recipe that satisfies all of the requested
// dietary restrictions and, when ingredient ids are given, uses at least
// one of them. Results are ordered by q.Sort; ties keep the store's order.
func (e *Engine) MatchRecipes(ctx context.Context, q Query) ([]Result, error) {
	restrictions := NewIDSet(q.DietaryRestrictionIDs...)
	available := NewIDSet(q.IngredientIDs...)

	records, err := e.store.FetchRecipesWithAssociations(ctx, restrictions.Sorted())
	if err != nil {
		return nil, fmt.Errorf("fetching recipes: %w", err)
	}

	candidates := make([]candidate, 0, len(records))
	for _, r := range records {
		if !satisfiesAll(r.RestrictionIDs, restrictions) {
			continue
		}
		if len(available) > 0 && !sharesAny(r.IngredientIDs, available) {
			continue
		}
		candidates = append(candidates, candidate{
			record:    r,
			score:     ScoreRecipe(r.IngredientIDs, available),
			favourite: r.FavouritedByUser(q.UserID),
		})
	}

	results, err := project(ctx, e.store, candidates)
	if err != nil {
		return nil, err
	}

	ordering.Apply(results, q.Sort, Result.sortFields)
	return results, nil
}

func satisfiesAll(have []int64, required IDSet) bool {
	if len(required) == 0 {
		return true
	}
	satisfied := 0
	for id := range NewIDSet(have...) {
		if required.Contains(id) {
			satisfied++
		}
	}
	return satisfied == len(required)
}

func sharesAny(have []int64, available IDSet) bool {
	for _, id := range have {
		if available.Contains(id) {
			return true
		}
	}
	return false
}
