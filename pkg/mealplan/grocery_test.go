package mealplan

import (
	"testing"

	"pantry-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groceryPlan(recipes map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe) domain.MealPlan {
	plan := make(domain.MealPlan)
	for _, day := range domain.Weekdays {
		plan[day] = make(map[domain.MealType]*domain.ScoredRecipe)
	}
	for day, slots := range recipes {
		for mt, r := range slots {
			plan[day][mt] = r
		}
	}
	return plan
}

func TestBuildGroceryListAggregatesAmounts(t *testing.T) {
	tacos := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID: 1,
		UsedIngredients: []domain.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
		MissedIngredients: []domain.RecipeIngredient{
			{Name: "lime", Amount: 1, Unit: ""},
		},
	}}
	bowl := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID: 2,
		UsedIngredients: []domain.RecipeIngredient{
			{Name: "rice", Amount: 1.5, Unit: "cups"},
		},
	}}

	plan := groceryPlan(map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe{
		domain.Monday:  {domain.MealTypeLunch: tacos},
		domain.Tuesday: {domain.MealTypeDinner: bowl},
	})

	items := BuildGroceryList(plan, []domain.MealType{domain.MealTypeLunch, domain.MealTypeDinner}, nil, nil)
	require.Len(t, items, 2)

	var rice domain.GroceryItem
	for _, item := range items {
		if item.Name == "rice" {
			rice = item
		}
	}
	assert.Equal(t, 3.5, rice.Amount)
	assert.Equal(t, []domain.MealType{domain.MealTypeLunch, domain.MealTypeDinner}, rice.MealTypes)
}

func TestBuildGroceryListCountsRepeatedRecipeOnce(t *testing.T) {
	r := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID: 1,
		MissedIngredients: []domain.RecipeIngredient{
			{Name: "lime", Amount: 1},
		},
	}}

	plan := groceryPlan(map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe{
		domain.Monday:  {domain.MealTypeDinner: r},
		domain.Tuesday: {domain.MealTypeDinner: r},
		domain.Friday:  {domain.MealTypeLunch: r},
	})

	items := BuildGroceryList(plan, []domain.MealType{domain.MealTypeLunch, domain.MealTypeDinner}, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Amount, "repeat placements must not double-count amounts")
	assert.Equal(t, []domain.MealType{domain.MealTypeLunch, domain.MealTypeDinner}, items[0].MealTypes)
}

func TestBuildGroceryListClassifiesAndSorts(t *testing.T) {
	r := &domain.ScoredRecipe{EnrichedRecipe: domain.EnrichedRecipe{
		ID: 1,
		MissedIngredients: []domain.RecipeIngredient{
			{Name: "rice", Amount: 1},
			{Name: "black beans", Amount: 2},
			{Name: "saffron", Amount: 1},
		},
	}}

	plan := groceryPlan(map[domain.Weekday]map[domain.MealType]*domain.ScoredRecipe{
		domain.Monday: {domain.MealTypeDinner: r},
	})

	items := BuildGroceryList(plan,
		[]domain.MealType{domain.MealTypeDinner},
		[]string{"brown rice"},
		map[string]string{"black beans": "2026-09-02"})
	require.Len(t, items, 3)

	assert.Equal(t, "saffron", items[0].Name)
	assert.Equal(t, domain.GroceryNeedToBuy, items[0].Status)

	assert.Equal(t, "black beans", items[1].Name)
	assert.Equal(t, domain.GroceryArrivingSoon, items[1].Status)
	assert.Equal(t, "2026-09-02", items[1].AvailableDate)

	assert.Equal(t, "rice", items[2].Name)
	assert.Equal(t, domain.GroceryInStock, items[2].Status)
	assert.Empty(t, items[2].AvailableDate)
}

func TestBuildGroceryListEmptyPlan(t *testing.T) {
	plan := groceryPlan(nil)
	items := BuildGroceryList(plan, []domain.MealType{domain.MealTypeDinner}, nil, nil)
	assert.Empty(t, items)
}
