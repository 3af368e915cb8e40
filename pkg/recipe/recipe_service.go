package recipe

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/pkg/ingredient"
	"pantry-planner/pkg/inventory"
)

type (
	RecipeService interface {
		FindRecipes(ctx context.Context, req domain.FindRecipesRequest) (domain.FindRecipesResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		client           SpoonacularClient
		inventoryService inventory.InventoryService
		opts             Options
	}

	// Options tunes cache freshness and result volume. Zero values are
	// replaced by defaults in NewRecipeService.
	Options struct {
		CacheMaxAgeDays   int
		CacheHitThreshold int
		SearchLimit       int
	}
)

func DefaultOptions() Options {
	return Options{
		CacheMaxAgeDays:   7,
		CacheHitThreshold: 10,
		SearchLimit:       24,
	}
}

func NewRecipeService(recipeRepository RecipeRepository, client SpoonacularClient, inventoryService inventory.InventoryService, opts Options) RecipeService {
	def := DefaultOptions()
	if opts.CacheMaxAgeDays <= 0 {
		opts.CacheMaxAgeDays = def.CacheMaxAgeDays
	}
	if opts.CacheHitThreshold <= 0 {
		opts.CacheHitThreshold = def.CacheHitThreshold
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = def.SearchLimit
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		client:           client,
		inventoryService: inventoryService,
		opts:             opts,
	}
}

func (s *recipeService) FindRecipes(ctx context.Context, req domain.FindRecipesRequest) (domain.FindRecipesResponse, error) {
	queryIngredients := normalizeIngredients(req.Ingredients)
	if len(queryIngredients) == 0 {
		return domain.FindRecipesResponse{Recipes: []domain.EnrichedRecipe{}, Source: "cache"}, nil
	}

	upcoming, err := s.inventoryService.UpcomingAvailability(ctx)
	if err != nil {
		return domain.FindRecipesResponse{}, err
	}

	cutoff := time.Now().AddDate(0, 0, -s.opts.CacheMaxAgeDays)

	if !req.ForceRefresh {
		cached, err := s.recipeRepository.LookupByIngredientOverlap(ctx, queryIngredients, cutoff)
		if err != nil {
			return domain.FindRecipesResponse{}, err
		}
		if len(cached) >= s.opts.CacheHitThreshold {
			recipes := s.enrichFromCache(cached, queryIngredients, upcoming)
			recipes = ApplyBudgetFilter(recipes, req.MaxBuyItems)
			return domain.FindRecipesResponse{Recipes: recipes, Source: "cache"}, nil
		}
	}

	// Staples are left out of the provider query; the provider treats them
	// as pantry items anyway.
	providerIngredients := make([]string, 0, len(queryIngredients))
	for _, name := range queryIngredients {
		if !ingredient.IsPantryStaple(name) {
			providerIngredients = append(providerIngredients, name)
		}
	}
	if len(providerIngredients) == 0 {
		providerIngredients = queryIngredients
	}

	results, err := s.client.FindByIngredients(ctx, providerIngredients, req.Diet, s.opts.SearchLimit)
	if err != nil {
		return domain.FindRecipesResponse{}, err
	}
	if len(results) == 0 {
		return domain.FindRecipesResponse{Recipes: []domain.EnrichedRecipe{}, Source: "api"}, nil
	}

	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}

	fresh, err := s.recipeRepository.GetFreshIDs(ctx, ids, cutoff)
	if err != nil {
		return domain.FindRecipesResponse{}, err
	}
	freshSet := make(map[int64]bool, len(fresh))
	for _, id := range fresh {
		freshSet[id] = true
	}

	var stale []int64
	for _, id := range ids {
		if !freshSet[id] {
			stale = append(stale, id)
		}
	}

	if len(stale) > 0 {
		// Detail fetch and refresh are best-effort; on failure the search
		// results still serve, enriched from whatever cache rows exist.
		details, err := s.client.InformationBulk(ctx, stale)
		if err != nil {
			log.Printf("recipe detail fetch failed: %v", err)
		} else {
			rows := make([]*entities.CachedRecipe, 0, len(details))
			for i := range details {
				rows = append(rows, toCachedRecipe(&details[i]))
			}
			if err := s.recipeRepository.Upsert(ctx, rows); err != nil {
				log.Printf("recipe cache upsert failed: %v", err)
			}
		}
	}

	cached, err := s.recipeRepository.GetByIDs(ctx, ids)
	if err != nil {
		return domain.FindRecipesResponse{}, err
	}
	cachedByID := make(map[int64]*entities.CachedRecipe, len(cached))
	for _, row := range cached {
		cachedByID[row.SpoonacularID] = row
	}

	recipes := make([]domain.EnrichedRecipe, 0, len(results))
	for _, result := range results {
		recipes = append(recipes, s.enrichSearchResult(result, cachedByID[result.ID], upcoming))
	}
	recipes = ApplyBudgetFilter(recipes, req.MaxBuyItems)

	return domain.FindRecipesResponse{Recipes: recipes, Source: "api"}, nil
}

// enrichSearchResult merges a provider ingredient-match result with its cache
// row. A recipe whose detail fetch failed still surfaces with nil nutrition.
func (s *recipeService) enrichSearchResult(result SearchResult, row *entities.CachedRecipe, upcoming map[string]string) domain.EnrichedRecipe {
	enriched := domain.EnrichedRecipe{
		ID:                    result.ID,
		Title:                 result.Title,
		Image:                 result.Image,
		UsedIngredients:       toDomainIngredients(result.UsedIngredients),
		MissedIngredients:     toDomainIngredients(result.MissedIngredients),
		UsedIngredientCount:   result.UsedIngredientCount,
		MissedIngredientCount: result.MissedIngredientCount,
	}

	if row != nil {
		enriched.Nutrition = decodeNutrition(row.Nutrition)
		enriched.Cuisines = row.Cuisines
		enriched.DietaryTags = row.DietaryTags
		enriched.ReadyInMinutes = row.ReadyInMinutes
		enriched.SourceURL = row.SourceURL
		enriched.Instructions = row.Instructions
		enriched.MealType = domain.MealType(row.MealType)
	} else {
		enriched.MealType = domain.MealTypeUnknown
	}

	enriched.UpcomingIngredients = computeUpcoming(enriched.MissedIngredients, upcoming)
	return enriched
}

// enrichFromCache rebuilds ingredient matches locally, since cache rows carry
// no per-query used/missed split. Sorted by coverage, capped at SearchLimit.
func (s *recipeService) enrichFromCache(rows []*entities.CachedRecipe, queryIngredients []string, upcoming map[string]string) []domain.EnrichedRecipe {
	recipes := make([]domain.EnrichedRecipe, 0, len(rows))
	for _, row := range rows {
		var all []domain.RecipeIngredient
		if row.Ingredients != "" {
			if err := json.Unmarshal([]byte(row.Ingredients), &all); err != nil {
				log.Printf("cached ingredients decode failed for recipe %d: %v", row.SpoonacularID, err)
			}
		}

		var used, missed []domain.RecipeIngredient
		for _, ing := range all {
			if ingredient.MatchesAny(ing.Name, queryIngredients) {
				used = append(used, ing)
			} else {
				missed = append(missed, ing)
			}
		}

		recipes = append(recipes, domain.EnrichedRecipe{
			ID:                    row.SpoonacularID,
			Title:                 row.Title,
			Image:                 row.ImageURL,
			UsedIngredients:       used,
			MissedIngredients:     missed,
			UsedIngredientCount:   len(used),
			MissedIngredientCount: len(missed),
			UpcomingIngredients:   computeUpcoming(missed, upcoming),
			Nutrition:             decodeNutrition(row.Nutrition),
			Cuisines:              row.Cuisines,
			DietaryTags:           row.DietaryTags,
			ReadyInMinutes:        row.ReadyInMinutes,
			SourceURL:             row.SourceURL,
			Instructions:          row.Instructions,
			MealType:              domain.MealType(row.MealType),
		})
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].UsedIngredientCount > recipes[j].UsedIngredientCount
	})
	if len(recipes) > s.opts.SearchLimit {
		recipes = recipes[:s.opts.SearchLimit]
	}
	return recipes
}

// ApplyBudgetFilter keeps recipes whose to-buy ingredient count fits the
// budget. A nil limit disables the filter; zero means pantry-only.
func ApplyBudgetFilter(recipes []domain.EnrichedRecipe, maxBuyItems *int) []domain.EnrichedRecipe {
	if maxBuyItems == nil {
		return recipes
	}

	kept := make([]domain.EnrichedRecipe, 0, len(recipes))
	for _, r := range recipes {
		if r.ComputeBuyCount() <= *maxBuyItems {
			kept = append(kept, r)
		}
	}
	return kept
}

var mealTypeKeywords = []struct {
	mealType domain.MealType
	keywords []string
}{
	{domain.MealTypeBreakfast, []string{"breakfast", "morning meal", "brunch"}},
	{domain.MealTypeLunch, []string{"lunch", "soup", "salad", "sandwich", "snack"}},
	{domain.MealTypeDinner, []string{"dinner", "main course", "main dish"}},
}

// classifyMealType maps provider dish types onto a single meal slot; the
// first exact keyword hit wins, in breakfast/lunch/dinner order.
func classifyMealType(dishTypes []string) domain.MealType {
	for _, entry := range mealTypeKeywords {
		for _, dishType := range dishTypes {
			lower := strings.ToLower(dishType)
			for _, keyword := range entry.keywords {
				if lower == keyword {
					return entry.mealType
				}
			}
		}
	}
	return domain.MealTypeUnknown
}

// parseNutrition pulls the four tracked macros out of the provider nutrient
// list by name. Missing nutrients read as zero.
func parseNutrition(nutrients []nutrient) *domain.RecipeNutrition {
	if len(nutrients) == 0 {
		return nil
	}

	lookup := func(name string) float64 {
		for _, n := range nutrients {
			if strings.EqualFold(n.Name, name) {
				return n.Amount
			}
		}
		return 0
	}

	return &domain.RecipeNutrition{
		Calories: lookup("Calories"),
		Protein:  lookup("Protein"),
		Carbs:    lookup("Carbohydrates"),
		Fat:      lookup("Fat"),
	}
}

func computeUpcoming(missed []domain.RecipeIngredient, upcoming map[string]string) []domain.UpcomingIngredient {
	var result []domain.UpcomingIngredient
	for _, ing := range missed {
		for name, date := range upcoming {
			if ingredient.Matches(ing.Name, name) {
				result = append(result, domain.UpcomingIngredient{
					Name:          ing.Name,
					AvailableDate: date,
				})
				break
			}
		}
	}
	return result
}

func toCachedRecipe(detail *RecipeDetail) *entities.CachedRecipe {
	names := make([]string, 0, len(detail.ExtendedIngredients))
	for _, ing := range detail.ExtendedIngredients {
		names = append(names, strings.ToLower(ing.Name))
	}

	ingredientsJSON, _ := json.Marshal(toDomainIngredients(detail.ExtendedIngredients))

	var nutritionJSON string
	if detail.Nutrition != nil {
		if parsed := parseNutrition(detail.Nutrition.Nutrients); parsed != nil {
			raw, _ := json.Marshal(parsed)
			nutritionJSON = string(raw)
		}
	}

	now := time.Now()
	return &entities.CachedRecipe{
		SpoonacularID:   detail.ID,
		Title:           detail.Title,
		ImageURL:        detail.Image,
		IngredientNames: names,
		Ingredients:     string(ingredientsJSON),
		Instructions:    detail.Instructions,
		Nutrition:       nutritionJSON,
		DietaryTags:     detail.Diets,
		Cuisines:        detail.Cuisines,
		ReadyInMinutes:  detail.ReadyInMinutes,
		SourceURL:       detail.SourceURL,
		MealType:        string(classifyMealType(detail.DishTypes)),
		CreatedAt:       now,
		LastFetchedAt:   now,
	}
}

func decodeNutrition(raw string) *domain.RecipeNutrition {
	if raw == "" {
		return nil
	}
	var n domain.RecipeNutrition
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil
	}
	return &n
}

func toDomainIngredients(ingredients []searchIngredient) []domain.RecipeIngredient {
	result := make([]domain.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, domain.RecipeIngredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}
	return result
}

func normalizeIngredients(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var names []string
	for _, name := range raw {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		names = append(names, lower)
	}
	return names
}
