// Package reference contains handlers for the ingredient and dietary
// restriction lists used to build match requests.
package reference

import (
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/matt-dz/recipematch/internal/api/error"
	"github.com/matt-dz/recipematch/internal/api/requestid"
	"github.com/matt-dz/recipematch/internal/env"
	mJson "github.com/matt-dz/recipematch/internal/json"
)

// ListIngredients godoc
//
//	@Summary	List ingredients.
//	@Tags		Reference
//	@Produce	json
//
//	@Success	200	{array}		recipe.Ingredient
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Router		/api/ingredients [GET]
func ListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	ingredients, err := env.Catalog.Ingredients(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.WriteJSON(w, http.StatusOK, ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// ListDietaryRestrictions godoc
//
//	@Summary	List dietary restrictions.
//	@Tags		Reference
//	@Produce	json
//
//	@Success	200	{array}		recipe.DietaryRestriction
//	@Failure	500	{object}	apiError.Error	"Internal server error"
//	@Router		/api/dietary-restrictions [GET]
func ListDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	restrictions, err := env.Catalog.DietaryRestrictions(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list dietary restrictions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.WriteJSON(w, http.StatusOK, restrictions); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
