package mealplan

import (
	"strings"

	"pantry-planner/domain"
	"pantry-planner/pkg/ingredient"
)

// Options tunes plan assembly. MacroTolerance is the multiplier applied to
// each daily goal before a recipe is rejected for overshooting it.
type Options struct {
	MacroTolerance float64
}

func DefaultOptions() Options {
	return Options{MacroTolerance: 1.10}
}

// ActiveMealTypes resolves which meal slots the plan covers: an explicit
// selection wins, otherwise meals-per-day picks a sensible default.
func ActiveMealTypes(prefs domain.StudentPreferences) []domain.MealType {
	if len(prefs.SelectedMealTypes) > 0 {
		return prefs.SelectedMealTypes
	}
	switch prefs.MealsPerDay {
	case 3:
		return []domain.MealType{domain.MealTypeBreakfast, domain.MealTypeLunch, domain.MealTypeDinner}
	case 2:
		return []domain.MealType{domain.MealTypeLunch, domain.MealTypeDinner}
	default:
		return []domain.MealType{domain.MealTypeDinner}
	}
}

type assembler struct {
	prefs       domain.StudentPreferences
	inStock     []string
	arriving    []string
	opts        Options
	usedToBuy   map[string]bool
	dayTotals   map[domain.Weekday]*domain.RecipeNutrition
	typeCursor  map[domain.MealType]int
	otherCursor map[domain.MealType]int
}

// Assemble fills a Monday-Friday grid with one recipe per active meal type,
// rotating through the liked recipes of each type. A slot is filled only if
// the recipe fits the remaining weekly buy budget and the day's macro
// ceilings; untyped recipes back-fill under the same checks. Returns the plan
// and the number of distinct to-buy ingredients it commits to.
func Assemble(liked []domain.ScoredRecipe, prefs domain.StudentPreferences, inStock []string, arriving map[string]string, opts Options) (domain.MealPlan, int) {
	if opts.MacroTolerance <= 0 {
		opts.MacroTolerance = DefaultOptions().MacroTolerance
	}

	arrivingNames := make([]string, 0, len(arriving))
	for name := range arriving {
		arrivingNames = append(arrivingNames, name)
	}

	a := &assembler{
		prefs:       prefs,
		inStock:     inStock,
		arriving:    arrivingNames,
		opts:        opts,
		usedToBuy:   make(map[string]bool),
		dayTotals:   make(map[domain.Weekday]*domain.RecipeNutrition),
		typeCursor:  make(map[domain.MealType]int),
		otherCursor: make(map[domain.MealType]int),
	}

	byType := make(map[domain.MealType][]domain.ScoredRecipe)
	var untyped []domain.ScoredRecipe
	for _, r := range liked {
		switch r.MealType {
		case domain.MealTypeBreakfast, domain.MealTypeLunch, domain.MealTypeDinner:
			byType[r.MealType] = append(byType[r.MealType], r)
		default:
			untyped = append(untyped, r)
		}
	}

	mealTypes := ActiveMealTypes(prefs)
	plan := make(domain.MealPlan, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		plan[day] = make(map[domain.MealType]*domain.ScoredRecipe, len(mealTypes))
		a.dayTotals[day] = &domain.RecipeNutrition{}

		for _, mt := range mealTypes {
			if placed := a.placeFromPool(plan, day, mt, byType[mt], a.typeCursor, false); placed {
				continue
			}
			if placed := a.placeFromPool(plan, day, mt, untyped, a.otherCursor, true); placed {
				continue
			}
			plan[day][mt] = nil
		}
	}

	return plan, len(a.usedToBuy)
}

// placeFromPool walks the pool round-robin from its cursor and places the
// first candidate that fits budget and macro limits.
func (a *assembler) placeFromPool(plan domain.MealPlan, day domain.Weekday, mt domain.MealType, pool []domain.ScoredRecipe, cursor map[domain.MealType]int, retag bool) bool {
	if len(pool) == 0 {
		return false
	}

	start := cursor[mt]
	for attempts := 0; attempts < len(pool); attempts++ {
		candidate := pool[(start+attempts)%len(pool)]

		toBuy := a.toBuyIngredients(candidate)
		var newItems int
		for _, name := range toBuy {
			if !a.usedToBuy[name] {
				newItems++
			}
		}
		if a.prefs.MaxBuyItems != nil && len(a.usedToBuy)+newItems > *a.prefs.MaxBuyItems {
			continue
		}
		if a.exceedsDailyLimits(day, candidate) {
			continue
		}

		if retag {
			candidate.MealType = domain.MealTypeUnknown
		}
		plan[day][mt] = &candidate
		for _, name := range toBuy {
			a.usedToBuy[name] = true
		}
		a.addDailyNutrition(day, candidate)
		cursor[mt] = (start + attempts + 1) % len(pool)
		return true
	}
	return false
}

// toBuyIngredients is the subset of missed ingredients not covered by a
// shipment, a restock, or a fuzzy pantry match.
func (a *assembler) toBuyIngredients(r domain.ScoredRecipe) []string {
	upcoming := make(map[string]bool, len(r.UpcomingIngredients))
	for _, u := range r.UpcomingIngredients {
		upcoming[strings.ToLower(u.Name)] = true
	}

	var toBuy []string
	for _, ing := range r.MissedIngredients {
		name := strings.ToLower(ing.Name)
		if upcoming[name] {
			continue
		}
		if ingredient.MatchesAny(name, a.inStock) || ingredient.MatchesAny(name, a.arriving) {
			continue
		}
		toBuy = append(toBuy, name)
	}
	return toBuy
}

func (a *assembler) exceedsDailyLimits(day domain.Weekday, r domain.ScoredRecipe) bool {
	if r.Nutrition == nil {
		return false
	}
	totals := a.dayTotals[day]
	over := func(goal *float64, current, add float64) bool {
		return goal != nil && *goal > 0 && current+add > *goal*a.opts.MacroTolerance
	}
	return over(a.prefs.CalorieGoal, totals.Calories, r.Nutrition.Calories) ||
		over(a.prefs.ProteinGoal, totals.Protein, r.Nutrition.Protein) ||
		over(a.prefs.CarbGoal, totals.Carbs, r.Nutrition.Carbs) ||
		over(a.prefs.FatGoal, totals.Fat, r.Nutrition.Fat)
}

func (a *assembler) addDailyNutrition(day domain.Weekday, r domain.ScoredRecipe) {
	if r.Nutrition == nil {
		return
	}
	totals := a.dayTotals[day]
	totals.Calories += r.Nutrition.Calories
	totals.Protein += r.Nutrition.Protein
	totals.Carbs += r.Nutrition.Carbs
	totals.Fat += r.Nutrition.Fat
}
