package mealplan

import (
	"sort"
	"strings"

	"pantry-planner/domain"
	"pantry-planner/pkg/ingredient"
)

type groceryEntry struct {
	amount    float64
	unit      string
	mealTypes map[domain.MealType]bool
	order     int
}

// BuildGroceryList aggregates every ingredient the plan needs, summing
// amounts by name. A recipe appearing in several slots contributes its
// amounts once; extra slots only widen the meal-type tags. Items are
// classified against the pantry and ordered need-to-buy first.
func BuildGroceryList(plan domain.MealPlan, mealTypes []domain.MealType, inStock []string, arriving map[string]string) []domain.GroceryItem {
	entries := make(map[string]*groceryEntry)
	countedRecipes := make(map[int64]bool)

	for _, day := range domain.Weekdays {
		for _, mt := range mealTypes {
			recipe := plan[day][mt]
			if recipe == nil {
				continue
			}

			all := make([]domain.RecipeIngredient, 0, len(recipe.UsedIngredients)+len(recipe.MissedIngredients))
			all = append(all, recipe.UsedIngredients...)
			all = append(all, recipe.MissedIngredients...)

			if countedRecipes[recipe.ID] {
				for _, ing := range all {
					if entry, ok := entries[strings.ToLower(ing.Name)]; ok {
						entry.mealTypes[mt] = true
					}
				}
				continue
			}
			countedRecipes[recipe.ID] = true

			for _, ing := range all {
				key := strings.ToLower(ing.Name)
				if entry, ok := entries[key]; ok {
					entry.amount += ing.Amount
					entry.mealTypes[mt] = true
				} else {
					entries[key] = &groceryEntry{
						amount:    ing.Amount,
						unit:      ing.Unit,
						mealTypes: map[domain.MealType]bool{mt: true},
						order:     len(entries),
					}
				}
			}
		}
	}

	arrivingNames := make([]string, 0, len(arriving))
	for name := range arriving {
		arrivingNames = append(arrivingNames, name)
	}
	sort.Strings(arrivingNames)

	items := make([]domain.GroceryItem, 0, len(entries))
	for name, entry := range entries {
		item := domain.GroceryItem{
			Name:      name,
			Amount:    entry.amount,
			Unit:      entry.unit,
			MealTypes: sortedMealTypes(entry.mealTypes),
		}

		switch {
		case ingredient.MatchesAny(name, inStock):
			item.Status = domain.GroceryInStock
		default:
			item.Status = domain.GroceryNeedToBuy
			for _, arrivingName := range arrivingNames {
				if ingredient.Matches(name, arrivingName) {
					item.Status = domain.GroceryArrivingSoon
					item.AvailableDate = arriving[arrivingName]
					break
				}
			}
		}

		items = append(items, item)
	}

	statusOrder := map[domain.GroceryStatus]int{
		domain.GroceryNeedToBuy:    0,
		domain.GroceryArrivingSoon: 1,
		domain.GroceryInStock:      2,
	}
	sort.SliceStable(items, func(i, j int) bool {
		if statusOrder[items[i].Status] != statusOrder[items[j].Status] {
			return statusOrder[items[i].Status] < statusOrder[items[j].Status]
		}
		return entries[items[i].Name].order < entries[items[j].Name].order
	})
	return items
}

func sortedMealTypes(set map[domain.MealType]bool) []domain.MealType {
	var types []domain.MealType
	for _, mt := range domain.MealTypeOrder {
		if set[mt] {
			types = append(types, mt)
		}
	}
	// anything outside the canonical order goes last
	for mt := range set {
		found := false
		for _, known := range domain.MealTypeOrder {
			if mt == known {
				found = true
				break
			}
		}
		if !found {
			types = append(types, mt)
		}
	}
	return types
}
