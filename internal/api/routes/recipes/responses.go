package recipes

import (
	"github.com/matt-dz/recipematch/internal/filestore"
	"github.com/matt-dz/recipematch/internal/matching"
	"github.com/matt-dz/recipematch/internal/recipe"
)

type DietaryRestrictionsResponse struct {
	RecipeID            int64    `json:"recipe_id"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func resolveSummaries(files filestore.FileStore, summaries []recipe.Summary) {
	for i := range summaries {
		summaries[i].Img = files.ResolveImage(summaries[i].Img)
	}
}

func resolveTrending(files filestore.FileStore, trending []recipe.Trending) {
	for i := range trending {
		trending[i].Img = files.ResolveImage(trending[i].Img)
	}
}

func resolveResults(files filestore.FileStore, results []matching.Result) {
	for i := range results {
		results[i].Img = files.ResolveImage(results[i].Img)
	}
}
