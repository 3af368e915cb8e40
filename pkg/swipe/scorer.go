package swipe

import (
	"math"
	"sort"
	"strings"

	"pantry-planner/domain"
	"pantry-planner/pkg/ingredient"
)

// ScoreOptions tunes the scoring weights that are worth adjusting per
// deployment. The fixed component weights live in the score functions.
type ScoreOptions struct {
	BuyPenaltyScale int
}

func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{BuyPenaltyScale: 15}
}

// ScoreRecipes ranks recipes against preferences and popularity counts.
// Scores can go negative; ordering is stable so equal scores keep their
// retrieval order.
func ScoreRecipes(recipes []domain.EnrichedRecipe, prefs domain.StudentPreferences, popular map[int64]domain.PopularRecipe, opts ScoreOptions) []domain.ScoredRecipe {
	if opts.BuyPenaltyScale <= 0 {
		opts.BuyPenaltyScale = DefaultScoreOptions().BuyPenaltyScale
	}

	scored := make([]domain.ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		buyCount := r.ComputeBuyCount()
		score := dietaryPenalty(r, prefs) +
			buyPenalty(buyCount, prefs.MaxBuyItems, opts.BuyPenaltyScale) +
			macroProximity(r.Nutrition, prefs) +
			cuisineBonus(r.Cuisines, prefs.CuisinePreferences) +
			coverageScore(r.UsedIngredientCount, r.MissedIngredientCount) +
			popularityScore(popular[r.ID]) +
			dislikePenalty(r, prefs.DislikedIngredients)

		scored = append(scored, domain.ScoredRecipe{
			EnrichedRecipe: r,
			Score:          score,
			BuyCount:       buyCount,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// dietaryPenalty fires only when the recipe carries a dietary tag list; an
// untagged recipe (nil) is not assumed to violate anything, but an empty list
// means the provider reported no diets and every restriction is unmet.
func dietaryPenalty(r domain.EnrichedRecipe, prefs domain.StudentPreferences) int {
	if len(prefs.DietaryRestrictions) == 0 || r.DietaryTags == nil {
		return 0
	}

	tags := make(map[string]bool, len(r.DietaryTags))
	for _, tag := range r.DietaryTags {
		tags[strings.ToLower(tag)] = true
	}
	for _, restriction := range prefs.DietaryRestrictions {
		if !tags[strings.ToLower(restriction)] {
			return -50
		}
	}
	return 0
}

func buyPenalty(buyCount int, maxBuyItems *int, scale int) int {
	if buyCount <= 0 || maxBuyItems == nil || *maxBuyItems <= 0 {
		return 0
	}
	return -int(math.Round(float64(scale) * float64(buyCount) / float64(*maxBuyItems)))
}

// macroProximity returns 0-30 by how close the recipe sits to each set goal's
// per-meal share. Without nutrition data or goals it returns a neutral 15.
func macroProximity(nutrition *domain.RecipeNutrition, prefs domain.StudentPreferences) int {
	goals := []struct {
		goal   *float64
		actual float64
	}{}
	if nutrition != nil {
		goals = []struct {
			goal   *float64
			actual float64
		}{
			{prefs.CalorieGoal, nutrition.Calories},
			{prefs.ProteinGoal, nutrition.Protein},
			{prefs.CarbGoal, nutrition.Carbs},
			{prefs.FatGoal, nutrition.Fat},
		}
	}

	mealsPerDay := prefs.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = 3
	}

	var sum float64
	var count int
	for _, g := range goals {
		if g.goal == nil || *g.goal <= 0 {
			continue
		}
		target := *g.goal / float64(mealsPerDay)
		sum += math.Max(0, 1-math.Abs(g.actual-target)/target)
		count++
	}
	if count == 0 {
		return 15
	}
	return int(math.Round(sum / float64(count) * 30))
}

func cuisineBonus(cuisines, preferences []string) int {
	for _, c := range cuisines {
		for _, p := range preferences {
			if strings.EqualFold(c, p) {
				return 20
			}
		}
	}
	return 0
}

func coverageScore(used, missed int) int {
	total := used + missed
	if total == 0 {
		return 0
	}
	return int(math.Round(20 * float64(used) / float64(total)))
}

func popularityScore(p domain.PopularRecipe) int {
	raw := int(math.Round(float64(p.LikeCount*3+p.ViewCount) / 5))
	if raw > 10 {
		return 10
	}
	return raw
}

// dislikePenalty charges once per disliked ingredient that fuzzy-matches any
// ingredient in the recipe.
func dislikePenalty(r domain.EnrichedRecipe, disliked []string) int {
	if len(disliked) == 0 {
		return 0
	}

	names := make([]string, 0, len(r.UsedIngredients)+len(r.MissedIngredients))
	for _, ing := range r.UsedIngredients {
		names = append(names, ing.Name)
	}
	for _, ing := range r.MissedIngredients {
		names = append(names, ing.Name)
	}

	penalty := 0
	for _, d := range disliked {
		if ingredient.MatchesAny(d, names) {
			penalty -= 5
		}
	}
	return penalty
}
