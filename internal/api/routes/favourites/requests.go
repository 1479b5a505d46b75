package favourites

type SaveFavouriteRequest struct {
	RecipeID int64 `json:"recipe_id" validate:"gt=0"`
}

type FavouriteResponse struct {
	UserID   int64 `json:"user_id"`
	RecipeID int64 `json:"recipe_id"`
}
