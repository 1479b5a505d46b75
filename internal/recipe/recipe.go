// Package recipe contains the recipe shapes shared between the catalog,
// the matching engine and the API.
package recipe

import (
	"slices"
	"time"
)

// Record is a recipe together with the id sets it is associated with.
// Id slices are in ascending order.
type Record struct {
	ID             int64
	Name           string
	Description    string
	CookTime       int32
	Difficulty     string
	CreatedAt      time.Time
	ImageURL       *string
	FetchCount     int64
	IngredientIDs  []int64
	RestrictionIDs []int64
	FavouritedBy   []int64
}

// FavouritedByUser reports whether userID has favourited the recipe.
func (r Record) FavouritedByUser(userID int64) bool {
	return slices.Contains(r.FavouritedBy, userID)
}

type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DietaryRestriction struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Summary is a recipe with its associations resolved to names.
type Summary struct {
	RecipeID            int64     `json:"recipe_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	CookTime            int32     `json:"cook_time"`
	Difficulty          string    `json:"difficulty"`
	CreatedAt           time.Time `json:"created_at"`
	Img                 *string   `json:"img"`
	Instructions        *string   `json:"instructions"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
	Ingredients         []string  `json:"ingredients"`
}

// Trending is a Summary ranked by how often it has been fetched.
type Trending struct {
	Summary
	FetchCount  int64 `json:"fetch_count"`
	IsFavourite bool  `json:"is_favourite"`
}

// Favourite is a Summary saved by a user.
type Favourite struct {
	Summary
	SavedAt time.Time `json:"saved_at"`
}
