package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessScoreRecipes  = "success score recipes"
	MessageSuccessBuildSessions = "success build swipe sessions"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedScoreRecipes  = "failed to score recipes"
	MessageFailedBuildSessions = "failed to build swipe sessions"

	// ErrProviderUnavailable marks retryable recipe-provider failures
	// (timeouts, non-2xx responses). Cached rows stay usable.
	ErrProviderUnavailable = errors.New("recipe provider unavailable")
)

type (
	RecipeIngredient struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Original string  `json:"original"`
	}

	RecipeNutrition struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	UpcomingIngredient struct {
		Name          string `json:"name"`
		AvailableDate string `json:"available_date"` // ISO date
	}

	// EnrichedRecipe joins a raw ingredient-match result with cached detail
	// (nutrition, cuisines, tags, meal type) and upcoming-ingredient info.
	EnrichedRecipe struct {
		ID                    int64                `json:"id"`
		Title                 string               `json:"title"`
		Image                 string               `json:"image,omitempty"`
		UsedIngredients       []RecipeIngredient   `json:"used_ingredients"`
		MissedIngredients     []RecipeIngredient   `json:"missed_ingredients"`
		UsedIngredientCount   int                  `json:"used_ingredient_count"`
		MissedIngredientCount int                  `json:"missed_ingredient_count"`
		UpcomingIngredients   []UpcomingIngredient `json:"upcoming_ingredients"`
		Nutrition             *RecipeNutrition     `json:"nutrition,omitempty"`
		Cuisines              []string             `json:"cuisines,omitempty"`
		DietaryTags           []string             `json:"dietary_tags,omitempty"`
		ReadyInMinutes        int                  `json:"ready_in_minutes,omitempty"`
		SourceURL             string               `json:"source_url,omitempty"`
		Instructions          string               `json:"instructions,omitempty"`
		MealType              MealType             `json:"meal_type,omitempty"`
	}

	ScoredRecipe struct {
		EnrichedRecipe
		Score    int `json:"score"`
		BuyCount int `json:"buy_count"`
	}

	// StudentPreferences is caller-supplied, immutable input; the engine
	// never stores it.
	StudentPreferences struct {
		DietaryRestrictions []string   `json:"dietary_restrictions"`
		CalorieGoal         *float64   `json:"calorie_goal"`
		ProteinGoal         *float64   `json:"protein_goal"`
		CarbGoal            *float64   `json:"carb_goal"`
		FatGoal             *float64   `json:"fat_goal"`
		CuisinePreferences  []string   `json:"cuisine_preferences"`
		MealsPerDay         int        `json:"meals_per_day" validate:"omitempty,min=1,max=3"`
		SelectedMealTypes   []MealType `json:"selected_meal_types,omitempty"`
		DislikedIngredients []string   `json:"disliked_ingredients"`
		MaxBuyItems         *int       `json:"max_buy_items"` // nil = no limit; 0 = pantry only
		SwipesPerMeal       int        `json:"swipes_per_meal"`
	}

	FindRecipesRequest struct {
		Ingredients  []string `json:"ingredients"`
		Diet         string   `json:"diet,omitempty"`
		MaxBuyItems  *int     `json:"max_buy_items,omitempty"`
		ForceRefresh bool     `json:"force_refresh,omitempty"`
	}

	FindRecipesResponse struct {
		Recipes []EnrichedRecipe `json:"recipes"`
		Source  string           `json:"source"` // "cache" or "api"
	}

	ScoreRecipesRequest struct {
		Recipes     []EnrichedRecipe   `json:"recipes" validate:"required"`
		Preferences StudentPreferences `json:"preferences"`
	}

	BuildSessionsRequest struct {
		Recipes     []ScoredRecipe `json:"recipes" validate:"required"`
		MealTypes   []MealType     `json:"meal_types" validate:"required,min=1"`
		SessionSize int            `json:"session_size"`
	}
)

// MissedNotUpcoming returns the lower-cased names of missed ingredients that
// are not arriving via a known shipment or restock.
func (r EnrichedRecipe) MissedNotUpcoming() []string {
	upcoming := make(map[string]bool, len(r.UpcomingIngredients))
	for _, u := range r.UpcomingIngredients {
		upcoming[strings.ToLower(u.Name)] = true
	}

	var names []string
	for _, ing := range r.MissedIngredients {
		name := strings.ToLower(ing.Name)
		if !upcoming[name] {
			names = append(names, name)
		}
	}
	return names
}

// ComputeBuyCount is the number of missed ingredients the requester would
// actually have to purchase.
func (r EnrichedRecipe) ComputeBuyCount() int {
	return len(r.MissedNotUpcoming())
}
