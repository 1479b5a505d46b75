// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/recipematch/internal/api/error"
	"github.com/matt-dz/recipematch/internal/api/params"
	"github.com/matt-dz/recipematch/internal/api/requestid"
	"github.com/matt-dz/recipematch/internal/catalog"
	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/env"
	mJson "github.com/matt-dz/recipematch/internal/json"
	"github.com/matt-dz/recipematch/internal/log"
	"github.com/matt-dz/recipematch/internal/matching"
	"github.com/matt-dz/recipematch/internal/metrics"
	"github.com/matt-dz/recipematch/internal/ordering"
)

const maxRequestSize = 1 << 20

// ListRecipes godoc
//
//	@Summary		List recipes.
//	@Description	Lists every recipe with its ingredients, dietary restrictions and instructions.
//	@Tags			Recipes
//	@Produce		json
//
//	@Param			sortBy		query		string	false	"match, date, cooktime or difficulty"
//	@Param			sortOrder	query		string	false	"asc or desc"
//
//	@Success		200			{array}		recipe.Summary
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Router			/api/recipes [GET]
func ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	sort := ordering.Parse(r.URL.Query().Get("sortBy"), r.URL.Query().Get("sortOrder"))
	env.Logger.DebugContext(ctx, "listing recipes", slog.String("sort", sort.Key.String()))
	summaries, err := env.Catalog.ListRecipes(ctx, sort)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	resolveSummaries(env.FileStore, summaries)

	if err := mJson.WriteJSON(w, http.StatusOK, summaries); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//	@Produce	json
//
//	@Param		recipeID	path		int	true	"Recipe ID"
//
//	@Success	200			{object}	recipe.Summary
//	@Failure	400			{object}	apiError.Error	"Invalid recipe id"
//	@Failure	404			{object}	apiError.Error	"Recipe not found"
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//	@Router		/api/recipes/{recipeID} [GET]
func GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeID, err := params.PathID(r, "recipeID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("recipe-id", recipeID))

	summary, err := env.Catalog.GetRecipe(ctx, recipeID)
	if errors.Is(err, catalog.ErrRecipeNotFound) {
		env.Logger.ErrorContext(ctx, "recipe not found")
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	summary.Img = env.FileStore.ResolveImage(summary.Img)

	if err := mJson.WriteJSON(w, http.StatusOK, summary); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetRecipeDietaryRestrictions godoc
//
//	@Summary	List the dietary restrictions a recipe satisfies.
//	@Tags		Recipes
//	@Produce	json
//
//	@Param		recipeID	path		int	true	"Recipe ID"
//
//	@Success	200			{object}	DietaryRestrictionsResponse
//	@Failure	400			{object}	apiError.Error	"Invalid recipe id"
//	@Failure	404			{object}	apiError.Error	"Recipe not found"
//	@Failure	500			{object}	apiError.Error	"Internal server error"
//	@Router		/api/recipes/{recipeID}/dietary-restrictions [GET]
func GetRecipeDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	recipeID, err := params.PathID(r, "recipeID")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	names, err := env.Catalog.RecipeDietaryRestrictions(ctx, recipeID)
	if errors.Is(err, catalog.ErrRecipeNotFound) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get dietary restrictions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp := DietaryRestrictionsResponse{RecipeID: recipeID, DietaryRestrictions: names}
	if err := mJson.WriteJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// GetTrendingRecipes godoc
//
//	@Summary		List trending recipes.
//	@Description	Recipes ordered by how often they have been fetched, flagged with the user's favourites.
//	@Tags			Recipes
//	@Produce		json
//
//	@Param			userId	query		int	true	"User ID"
//	@Param			limit	query		int	false	"Maximum number of recipes"
//
//	@Success		200		{array}		recipe.Trending
//	@Failure		400		{object}	apiError.Error	"Invalid user id or limit"
//	@Failure		500		{object}	apiError.Error	"Internal server error"
//	@Router			/api/recipes/trending [GET]
func GetTrendingRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := params.QueryID(r, "userId")
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("user-id", userID))

	defaultLimit := int64(env.Config.Trending.Limit)
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	limit, err := params.QueryInt(r, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > config.MaxTrendingLimit {
		env.Logger.ErrorContext(ctx, "invalid limit", slog.Int64("limit", limit), slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest,
			"limit must be between 1 and "+strconv.Itoa(config.MaxTrendingLimit), requestID)
		return
	}

	trending, err := env.Catalog.Trending(ctx, userID, int32(limit))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list trending recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	resolveTrending(env.FileStore, trending)

	if err := mJson.WriteJSON(w, http.StatusOK, trending); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// MatchRecipes godoc
//
//	@Summary		Match recipes against ingredients on hand.
//	@Description	Returns recipes that satisfy every requested dietary restriction and, when
//	@Description	ingredients are given, use at least one of them, with match percentages.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//
//	@Param			request		body		MatchRecipesRequest	true	"Match request"
//	@Param			sortBy		query		string				false	"match, date, cooktime or difficulty"
//	@Param			sortOrder	query		string				false	"asc or desc"
//
//	@Success		200			{array}		matching.Result
//	@Failure		400			{object}	apiError.Error	"Bad request"
//	@Failure		429			{object}	apiError.Error	"Too many requests"
//	@Failure		500			{object}	apiError.Error	"Internal server error"
//	@Router			/api/recipes/match [POST]
func MatchRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request MatchRecipesRequest
	env.Logger.DebugContext(ctx, "reading request body")
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
	if request.empty() {
		env.Logger.ErrorContext(ctx, "no ingredients or dietary restrictions given")
		_ = apiError.EncodeError(w, apiError.BadRequest,
			"at least one ingredient or dietary restriction is required", requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.Int64("user-id", request.UserID))

	// Match
	sort := ordering.Parse(r.URL.Query().Get("sortBy"), r.URL.Query().Get("sortOrder"))
	env.Logger.DebugContext(ctx, "matching recipes",
		slog.Int("ingredients", len(request.IngredientIDs)),
		slog.Int("dietary-restrictions", len(request.DietaryRestrictionIDs)),
		slog.String("sort", sort.Key.String()),
		slog.String("order", sort.Order.String()))
	start := time.Now()
	results, err := env.Matcher.MatchRecipes(ctx, matching.Query{
		UserID:                request.UserID,
		IngredientIDs:         request.IngredientIDs,
		DietaryRestrictionIDs: request.DietaryRestrictionIDs,
		Sort:                  sort,
	})
	metrics.RecordMatch(time.Since(start), len(results), err)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to match recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	resolveResults(env.FileStore, results)

	if err := mJson.WriteJSON(w, http.StatusOK, results); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
