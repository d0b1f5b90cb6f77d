package usecase

import (
	"sort"
	"strings"

	"github.com/chef/backend/internal/domain"
)

// MatchPantry ranks recipes by how many of their ingredient lines the pantry covers.
//
// A recipe line counts as "have" when it contains any pantry entry as a
// case-insensitive substring, so "tomato" covers "2 diced tomatoes" and
// "tomato paste" alike. Recipes with no covered line are left out. Results are
// sorted by descending match percentage; equal percentages keep input order.
//
// An empty pantry yields an empty result without looking at the recipes.
func MatchPantry(pantry []string, recipes []domain.RecipeIngredients) []domain.MatchResult {
	needles := normalizePantry(pantry)
	results := make([]domain.MatchResult, 0)
	if len(needles) == 0 {
		return results
	}

	for _, recipe := range recipes {
		result, ok := matchRecipe(needles, recipe)
		if ok {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})

	return results
}

// normalizePantry lowercases and trims pantry entries, dropping blank ones.
// A blank entry would otherwise be a substring of every line.
func normalizePantry(pantry []string) []string {
	needles := make([]string, 0, len(pantry))
	for _, entry := range pantry {
		if n := strings.ToLower(strings.TrimSpace(entry)); n != "" {
			needles = append(needles, n)
		}
	}
	return needles
}

// matchRecipe splits a recipe's lines into matching and missing. ok is false
// when nothing matched.
func matchRecipe(needles []string, recipe domain.RecipeIngredients) (domain.MatchResult, bool) {
	result := domain.MatchResult{
		RecipeID:            recipe.ID,
		MatchingIngredients: make([]string, 0),
		MissingIngredients:  make([]string, 0),
	}

	for _, line := range recipe.Ingredients {
		if containsAny(strings.ToLower(line), needles) {
			result.MatchingIngredients = append(result.MatchingIngredients, line)
		} else {
			result.MissingIngredients = append(result.MissingIngredients, line)
		}
	}

	result.MatchCount = len(result.MatchingIngredients)
	if result.MatchCount == 0 {
		return domain.MatchResult{}, false
	}
	result.MatchPercentage = float64(result.MatchCount) / float64(len(recipe.Ingredients)) * 100

	return result, true
}

func containsAny(line string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}
