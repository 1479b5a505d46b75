// Package favourites contains handlers for a user's saved recipes.
package favourites

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/recipematch/internal/api/error"
	"github.com/matt-dz/recipematch/internal/api/params"
	"github.com/matt-dz/recipematch/internal/api/requestid"
	"github.com/matt-dz/recipematch/internal/catalog"
	"github.com/matt-dz/recipematch/internal/env"
	mJson "github.com/matt-dz/recipematch/internal/json"
	"github.com/matt-dz/recipematch/internal/log"
)

const maxRequestSize = 1 << 10

// ListFavourites godoc
//
//	@Summary	List a user's favourite recipes.
//	@Tags		Favourites
//	@Produce	json
//
//	@Param		userID	path		int	true	"User ID"
//
//	@Success	200		{array}		recipe.Favourite
//	@Failure	400		{object}	apiError.Error	"Invalid user id"
//	@Failure	404		{object}	apiError.Error	"User not found"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Router		/api/favourites/{userID} [GET]
func ListFavourites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := params.PathID(r, "userID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))

	favourites, err := env.Catalog.Favourites(ctx, userID)
	if errors.Is(err, catalog.ErrUserNotFound) {
		env.Logger.ErrorContext(ctx, "user not found")
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list favourites", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	for i := range favourites {
		favourites[i].Img = env.FileStore.ResolveImage(favourites[i].Img)
	}

	if err := mJson.WriteJSON(w, http.StatusOK, favourites); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// SaveFavourite godoc
//
//	@Summary	Save a recipe to a user's favourites.
//	@Tags		Favourites
//	@Accept		json
//	@Produce	json
//
//	@Param		userID	path		int						true	"User ID"
//	@Param		request	body		SaveFavouriteRequest	true	"Recipe to save"
//
//	@Success	201		{object}	FavouriteResponse
//	@Failure	400		{object}	apiError.Error	"Bad request"
//	@Failure	404		{object}	apiError.Error	"User or recipe not found"
//	@Failure	409		{object}	apiError.Error	"Recipe already favourited"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Router		/api/favourites/{userID}/recipes [POST]
func SaveFavourite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := params.PathID(r, "userID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))

	// Decode JSON
	var request SaveFavouriteRequest
	defer func() { _ = r.Body.Close() }()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := mJson.DecodeJSON(&request, r.Body); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("recipe-id", request.RecipeID))

	err = env.Catalog.SaveFavourite(ctx, userID, request.RecipeID)
	switch {
	case errors.Is(err, catalog.ErrUserNotFound):
		env.Logger.ErrorContext(ctx, "user not found")
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	case errors.Is(err, catalog.ErrRecipeNotFound):
		env.Logger.ErrorContext(ctx, "recipe not found")
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	case errors.Is(err, catalog.ErrAlreadyFavourited):
		env.Logger.ErrorContext(ctx, "recipe already favourited")
		_ = apiError.EncodeError(w, apiError.AlreadyFavourited, "recipe already favourited", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "failed to save favourite", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp := FavouriteResponse{UserID: userID, RecipeID: request.RecipeID}
	if err := mJson.WriteJSON(w, http.StatusCreated, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// RemoveFavourite godoc
//
//	@Summary	Remove a recipe from a user's favourites.
//	@Tags		Favourites
//
//	@Param		userID		path	int	true	"User ID"
//	@Param		recipeID	path	int	true	"Recipe ID"
//
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Bad request"
//	@Failure	404	{object}	apiError.Error	"Favourite not found"
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Router		/api/favourites/{userID}/recipes/{recipeID} [DELETE]
func RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := params.PathID(r, "userID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	recipeID, err := params.PathID(r, "recipeID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))

	err = env.Catalog.RemoveFavourite(ctx, userID, recipeID)
	if errors.Is(err, catalog.ErrNotFavourited) {
		env.Logger.ErrorContext(ctx, "favourite not found", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.FavouriteNotFound, "recipe is not in favourites", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to remove favourite", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
