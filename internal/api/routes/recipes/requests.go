package recipes

type MatchRecipesRequest struct {
	UserID                int64   `json:"user_id" validate:"gt=0"`
	IngredientIDs         []int64 `json:"ingredient_ids" validate:"dive,gt=0"`
	DietaryRestrictionIDs []int64 `json:"dietary_restriction_ids" validate:"dive,gt=0"`
}

// empty reports whether neither ingredients nor restrictions were given.
func (r MatchRecipesRequest) empty() bool {
	return len(r.IngredientIDs) == 0 && len(r.DietaryRestrictionIDs) == 0
}
