package matching

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-dz/recipematch/internal/ordering"
	"github.com/matt-dz/recipematch/internal/recipe"
)

type fakeStore struct {
	records      []recipe.Record
	ingredients  map[int64]string
	restrictions map[int64]string
	fetchErr     error
	resolveErr   error
	resolveCalls atomic.Int32
}

func (f *fakeStore) FetchRecipesWithAssociations(_ context.Context, _ []int64) ([]recipe.Record, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.records, nil
}

func (f *fakeStore) ResolveIngredientNames(_ context.Context, ids []int64) (map[int64]string, error) {
	f.resolveCalls.Add(1)
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return pick(f.ingredients, ids), nil
}

func (f *fakeStore) ResolveRestrictionNames(_ context.Context, ids []int64) (map[int64]string, error) {
	f.resolveCalls.Add(1)
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return pick(f.restrictions, ids), nil
}

func pick(names map[int64]string, ids []int64) map[int64]string {
	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out[id] = name
		}
	}
	return out
}

var base = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newCatalog() *fakeStore {
	return &fakeStore{
		records: []recipe.Record{
			{
				ID: 1, Name: "Honey Ginger Shrimp", CookTime: 20, Difficulty: "Medium",
				CreatedAt:      base,
				IngredientIDs:  []int64{51, 56, 57},
				RestrictionIDs: []int64{7},
				FavouritedBy:   []int64{1},
			},
			{
				ID: 2, Name: "Garden Salad", CookTime: 10, Difficulty: "Easy",
				CreatedAt:      base.Add(24 * time.Hour),
				IngredientIDs:  []int64{60, 61},
				RestrictionIDs: []int64{7, 9},
				FavouritedBy:   []int64{2},
			},
			{
				ID: 3, Name: "Ginger Tea", CookTime: 5, Difficulty: "Easy",
				CreatedAt:      base.Add(48 * time.Hour),
				IngredientIDs:  []int64{56, 57},
				RestrictionIDs: []int64{7, 9},
			},
			{
				ID: 4, Name: "Mystery Stew", CookTime: 90, Difficulty: "Chef's choice",
				CreatedAt:     base.Add(72 * time.Hour),
				IngredientIDs: []int64{51, 60},
			},
		},
		ingredients: map[int64]string{
			51: "Shrimp", 56: "Ginger", 57: "Honey", 60: "Lettuce", 61: "Tomato",
		},
		restrictions: map[int64]string{7: "Dairy-Free", 9: "Vegan"},
	}
}

func ids(results []Result) []int64 {
	out := make([]int64, 0, len(results))
	for _, r := range results {
		out = append(out, r.RecipeID)
	}
	return out
}

func TestMatchRecipes(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantIDs []int64
	}{
		{
			name:    "ingredients filter to recipes sharing one",
			query:   Query{UserID: 1, IngredientIDs: []int64{51, 56, 57}, Sort: ordering.BestMatch},
			wantIDs: []int64{1, 3, 4},
		},
		{
			name:    "ingredients with no overlap",
			query:   Query{UserID: 1, IngredientIDs: []int64{99}, Sort: ordering.BestMatch},
			wantIDs: []int64{},
		},
		{
			name:    "single restriction",
			query:   Query{UserID: 1, DietaryRestrictionIDs: []int64{7}, Sort: ordering.BestMatch},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "restrictions are a conjunction",
			query:   Query{UserID: 1, DietaryRestrictionIDs: []int64{7, 9}, Sort: ordering.BestMatch},
			wantIDs: []int64{2, 3},
		},
		{
			name:    "restriction no recipe satisfies",
			query:   Query{UserID: 1, DietaryRestrictionIDs: []int64{8}, Sort: ordering.BestMatch},
			wantIDs: []int64{},
		},
		{
			name: "ingredients and restrictions combine",
			query: Query{
				UserID: 1, IngredientIDs: []int64{60},
				DietaryRestrictionIDs: []int64{9}, Sort: ordering.BestMatch,
			},
			wantIDs: []int64{2},
		},
		{
			name: "sort by cook time ascending",
			query: Query{
				UserID: 1, DietaryRestrictionIDs: []int64{7},
				Sort: ordering.Sort{Key: ordering.KeyCookTime, Order: ordering.Ascending},
			},
			wantIDs: []int64{3, 2, 1},
		},
		{
			name: "sort by date descending",
			query: Query{
				UserID: 1, IngredientIDs: []int64{51, 60},
				Sort: ordering.Sort{Key: ordering.KeyDate, Order: ordering.Descending},
			},
			wantIDs: []int64{4, 2, 1},
		},
		{
			name: "sort by difficulty keeps unknown last",
			query: Query{
				UserID: 1, IngredientIDs: []int64{51, 56, 60},
				Sort: ordering.Sort{Key: ordering.KeyDifficulty, Order: ordering.Descending},
			},
			wantIDs: []int64{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(newCatalog())
			got, err := engine.MatchRecipes(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("MatchRecipes() error = %v", err)
			}
			if got == nil {
				t.Fatal("MatchRecipes() returned nil slice")
			}
			if gotIDs := ids(got); !slices.Equal(gotIDs, tt.wantIDs) {
				t.Errorf("MatchRecipes() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestMatchRecipesProjection(t *testing.T) {
	engine := New(newCatalog())
	got, err := engine.MatchRecipes(context.Background(), Query{
		UserID:        1,
		IngredientIDs: []int64{51, 57},
		Sort:          ordering.BestMatch,
	})
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	if len(got) == 0 || got[0].RecipeID != 1 {
		t.Fatalf("expected shrimp recipe first, got %v", ids(got))
	}

	want := Result{
		RecipeID:                 1,
		Name:                     "Honey Ginger Shrimp",
		CookTime:                 20,
		Difficulty:               "Medium",
		CreatedAt:                base,
		MatchPercentage:          67,
		TotalIngredientsRequired: 3,
		IngredientsMatched:       2,
		IsFavourite:              true,
		MatchedIngredients:       []string{"Shrimp", "Honey"},
		MissingIngredients:       []string{"Ginger"},
		DietaryRestrictions:      []string{"Dairy-Free"},
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("result = %+v\nwant     %+v", got[0], want)
	}
}

func TestMatchRecipesFavouriteIsPerUser(t *testing.T) {
	engine := New(newCatalog())
	q := Query{IngredientIDs: []int64{51, 56, 57}, Sort: ordering.BestMatch}

	q.UserID = 1
	asOwner, err := engine.MatchRecipes(context.Background(), q)
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	q.UserID = 2
	asOther, err := engine.MatchRecipes(context.Background(), q)
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}

	if !asOwner[0].IsFavourite {
		t.Error("expected recipe 1 to be a favourite of user 1")
	}
	if asOther[0].IsFavourite {
		t.Error("expected recipe 1 not to be a favourite of user 2")
	}
}

func TestMatchRecipesWithoutIngredientsScoresZero(t *testing.T) {
	engine := New(newCatalog())
	got, err := engine.MatchRecipes(context.Background(), Query{
		UserID:                1,
		DietaryRestrictionIDs: []int64{7},
		Sort:                  ordering.BestMatch,
	})
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	for _, r := range got {
		if r.MatchPercentage != 0 || r.IngredientsMatched != 0 {
			t.Errorf("recipe %d: percentage = %d, matched = %d, want 0",
				r.RecipeID, r.MatchPercentage, r.IngredientsMatched)
		}
		if len(r.MissingIngredients) != r.TotalIngredientsRequired {
			t.Errorf("recipe %d: missing %d of %d", r.RecipeID,
				len(r.MissingIngredients), r.TotalIngredientsRequired)
		}
	}
}

func TestMatchRecipesIsIdempotent(t *testing.T) {
	engine := New(newCatalog())
	q := Query{UserID: 1, IngredientIDs: []int64{51, 56}, Sort: ordering.BestMatch}

	first, err := engine.MatchRecipes(context.Background(), q)
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	second, err := engine.MatchRecipes(context.Background(), q)
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\n%v\n%v", first, second)
	}
}

func TestMatchRecipesEmptySkipsNameResolution(t *testing.T) {
	store := newCatalog()
	engine := New(store)
	got, err := engine.MatchRecipes(context.Background(), Query{
		DietaryRestrictionIDs: []int64{8},
		Sort:                  ordering.BestMatch,
	})
	if err != nil {
		t.Fatalf("MatchRecipes() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %v", ids(got))
	}
	if calls := store.resolveCalls.Load(); calls != 0 {
		t.Errorf("expected no name lookups, got %d", calls)
	}
}

func TestMatchRecipesErrors(t *testing.T) {
	errStore := errors.New("connection refused")

	t.Run("fetch failure", func(t *testing.T) {
		store := newCatalog()
		store.fetchErr = errStore
		_, err := New(store).MatchRecipes(context.Background(), Query{IngredientIDs: []int64{51}})
		if !errors.Is(err, errStore) {
			t.Errorf("error = %v, want wrapping %v", err, errStore)
		}
	})

	t.Run("name resolution failure", func(t *testing.T) {
		store := newCatalog()
		store.resolveErr = errStore
		_, err := New(store).MatchRecipes(context.Background(), Query{IngredientIDs: []int64{51}})
		if !errors.Is(err, errStore) {
			t.Errorf("error = %v, want wrapping %v", err, errStore)
		}
	})

	t.Run("unknown ingredient name", func(t *testing.T) {
		store := newCatalog()
		delete(store.ingredients, 56)
		_, err := New(store).MatchRecipes(context.Background(), Query{IngredientIDs: []int64{51}})
		if !errors.Is(err, ErrUnresolvedName) {
			t.Errorf("error = %v, want %v", err, ErrUnresolvedName)
		}
	})

	t.Run("unknown restriction name", func(t *testing.T) {
		store := newCatalog()
		delete(store.restrictions, 9)
		_, err := New(store).MatchRecipes(context.Background(), Query{DietaryRestrictionIDs: []int64{7}})
		if !errors.Is(err, ErrUnresolvedName) {
			t.Errorf("error = %v, want %v", err, ErrUnresolvedName)
		}
	})
}
