package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"pantry-planner/domain"
	"pantry-planner/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	overlap       []*entities.CachedRecipe
	byID          map[int64]*entities.CachedRecipe
	upserted      []*entities.CachedRecipe
	overlapCutoff time.Time
	freshCutoff   time.Time
}

func (f *fakeRepository) LookupByIngredientOverlap(ctx context.Context, ingredients []string, fetchedAfter time.Time) ([]*entities.CachedRecipe, error) {
	f.overlapCutoff = fetchedAfter
	return f.overlap, nil
}

func (f *fakeRepository) GetFreshIDs(ctx context.Context, ids []int64, fetchedAfter time.Time) ([]int64, error) {
	f.freshCutoff = fetchedAfter
	var fresh []int64
	for _, id := range ids {
		if _, ok := f.byID[id]; ok {
			fresh = append(fresh, id)
		}
	}
	return fresh, nil
}

func (f *fakeRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.CachedRecipe, error) {
	var rows []*entities.CachedRecipe
	for _, id := range ids {
		if row, ok := f.byID[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeRepository) Upsert(ctx context.Context, recipes []*entities.CachedRecipe) error {
	f.upserted = append(f.upserted, recipes...)
	if f.byID == nil {
		f.byID = make(map[int64]*entities.CachedRecipe)
	}
	for _, row := range recipes {
		f.byID[row.SpoonacularID] = row
	}
	return nil
}

type fakeClient struct {
	searchResults []SearchResult
	details       []RecipeDetail
	bulkErr       error
	searchCalls   int
	bulkIDs       []int64
}

func (f *fakeClient) FindByIngredients(ctx context.Context, ingredients []string, diet string, number int) ([]SearchResult, error) {
	f.searchCalls++
	return f.searchResults, nil
}

func (f *fakeClient) InformationBulk(ctx context.Context, ids []int64) ([]RecipeDetail, error) {
	f.bulkIDs = append(f.bulkIDs, ids...)
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	return f.details, nil
}

type fakeInventory struct {
	upcoming map[string]string
}

func (f *fakeInventory) AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	return domain.InventoryItemResponse{}, nil
}
func (f *fakeInventory) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	return domain.InventoryItemResponse{}, nil
}
func (f *fakeInventory) DeleteItem(ctx context.Context, id string) error { return nil }
func (f *fakeInventory) GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	return nil, nil
}
func (f *fakeInventory) AddShipment(ctx context.Context, req domain.AddShipmentRequest) (domain.ShipmentResponse, error) {
	return domain.ShipmentResponse{}, nil
}
func (f *fakeInventory) DeleteShipment(ctx context.Context, id string) error { return nil }
func (f *fakeInventory) GetShipments(ctx context.Context) ([]domain.ShipmentResponse, error) {
	return nil, nil
}
func (f *fakeInventory) InStockNames(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeInventory) UpcomingAvailability(ctx context.Context) (map[string]string, error) {
	return f.upcoming, nil
}

func cachedRow(id int64, title string, names []string, mealType string) *entities.CachedRecipe {
	var ingredients []domain.RecipeIngredient
	for _, name := range names {
		ingredients = append(ingredients, domain.RecipeIngredient{Name: name})
	}
	raw, _ := json.Marshal(ingredients)
	return &entities.CachedRecipe{
		SpoonacularID:   id,
		Title:           title,
		IngredientNames: names,
		Ingredients:     string(raw),
		MealType:        mealType,
		LastFetchedAt:   time.Now(),
	}
}

func TestFindRecipesEmptyIngredients(t *testing.T) {
	svc := NewRecipeService(&fakeRepository{}, &fakeClient{}, &fakeInventory{}, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
}

func TestFindRecipesCacheHit(t *testing.T) {
	repo := &fakeRepository{}
	for i := 0; i < 12; i++ {
		row := cachedRow(int64(i+1), "recipe", []string{"rice", "beans"}, "dinner")
		repo.overlap = append(repo.overlap, row)
	}
	client := &fakeClient{}
	svc := NewRecipeService(repo, client, &fakeInventory{}, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients: []string{"rice"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cache", res.Source)
	assert.Len(t, res.Recipes, 12)
	assert.Equal(t, 0, client.searchCalls, "cache hit must not reach the provider")

	// rice matched, beans missed
	assert.Equal(t, 1, res.Recipes[0].UsedIngredientCount)
	assert.Equal(t, 1, res.Recipes[0].MissedIngredientCount)
}

func TestFindRecipesForceRefreshSkipsCache(t *testing.T) {
	repo := &fakeRepository{}
	for i := 0; i < 12; i++ {
		repo.overlap = append(repo.overlap, cachedRow(int64(i+1), "recipe", []string{"rice"}, "dinner"))
	}
	client := &fakeClient{
		searchResults: []SearchResult{{ID: 100, Title: "Fried Rice", UsedIngredientCount: 1}},
		details: []RecipeDetail{{
			ID:        100,
			Title:     "Fried Rice",
			DishTypes: []string{"main course"},
			ExtendedIngredients: []searchIngredient{
				{Name: "rice"}, {Name: "egg"},
			},
		}},
	}
	svc := NewRecipeService(repo, client, &fakeInventory{}, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients:  []string{"rice"},
		ForceRefresh: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "api", res.Source)
	assert.Equal(t, 1, client.searchCalls)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, domain.MealTypeDinner, res.Recipes[0].MealType)
	require.Len(t, repo.upserted, 1)
	assert.Equal(t, int64(100), repo.upserted[0].SpoonacularID)
}

func TestFindRecipesFetchesOnlyStaleDetails(t *testing.T) {
	repo := &fakeRepository{byID: map[int64]*entities.CachedRecipe{
		1: cachedRow(1, "Cached Soup", []string{"lentils"}, "lunch"),
	}}
	client := &fakeClient{
		searchResults: []SearchResult{
			{ID: 1, Title: "Cached Soup"},
			{ID: 2, Title: "New Stew"},
		},
		details: []RecipeDetail{{ID: 2, Title: "New Stew", DishTypes: []string{"dinner"}}},
	}
	svc := NewRecipeService(repo, client, &fakeInventory{}, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients: []string{"lentils"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, client.bulkIDs, "fresh rows must not be re-fetched")
	assert.Len(t, res.Recipes, 2)
}

func TestFindRecipesMarksUpcomingIngredients(t *testing.T) {
	client := &fakeClient{
		searchResults: []SearchResult{{
			ID:    5,
			Title: "Bean Bowl",
			MissedIngredients: []searchIngredient{
				{Name: "black beans"},
				{Name: "lime"},
			},
			MissedIngredientCount: 2,
		}},
		details: []RecipeDetail{{ID: 5, Title: "Bean Bowl"}},
	}
	inv := &fakeInventory{upcoming: map[string]string{"black beans": "2026-09-02"}}
	svc := NewRecipeService(&fakeRepository{}, client, inv, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients: []string{"rice"},
	})
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	require.Len(t, res.Recipes[0].UpcomingIngredients, 1)
	assert.Equal(t, "black beans", res.Recipes[0].UpcomingIngredients[0].Name)
	assert.Equal(t, "2026-09-02", res.Recipes[0].UpcomingIngredients[0].AvailableDate)
	assert.Equal(t, 1, res.Recipes[0].ComputeBuyCount(), "only lime still needs buying")
}

func TestFindRecipesServesDegradedWhenDetailFetchFails(t *testing.T) {
	client := &fakeClient{
		searchResults: []SearchResult{{ID: 9, Title: "Mystery Hash", UsedIngredientCount: 1}},
		bulkErr:       fmt.Errorf("%w: status 429", domain.ErrProviderUnavailable),
	}
	repo := &fakeRepository{}
	svc := NewRecipeService(repo, client, &fakeInventory{}, Options{})

	res, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients: []string{"potato"},
	})
	require.NoError(t, err, "a failed detail fetch must not fail the request")
	assert.Equal(t, "api", res.Source)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, int64(9), res.Recipes[0].ID)
	assert.Nil(t, res.Recipes[0].Nutrition)
	assert.Equal(t, domain.MealTypeUnknown, res.Recipes[0].MealType)
	assert.Empty(t, repo.upserted, "nothing to cache without detail rows")
}

func TestFindRecipesUsesFreshnessCutoff(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeClient{
		searchResults: []SearchResult{{ID: 1, Title: "Stew"}},
		details:       []RecipeDetail{{ID: 1, Title: "Stew"}},
	}
	svc := NewRecipeService(repo, client, &fakeInventory{}, Options{CacheMaxAgeDays: 3})

	_, err := svc.FindRecipes(context.Background(), domain.FindRecipesRequest{
		Ingredients: []string{"beef"},
	})
	require.NoError(t, err)

	// rows older than the freshness window must be excluded from both the
	// overlap lookup and the stale-ID probe
	wantCutoff := time.Now().AddDate(0, 0, -3)
	assert.WithinDuration(t, wantCutoff, repo.overlapCutoff, time.Minute)
	assert.WithinDuration(t, wantCutoff, repo.freshCutoff, time.Minute)
}

func TestApplyBudgetFilter(t *testing.T) {
	recipes := []domain.EnrichedRecipe{
		{ID: 1, MissedIngredients: []domain.RecipeIngredient{{Name: "lime"}, {Name: "cilantro"}}},
		{ID: 2, MissedIngredients: []domain.RecipeIngredient{{Name: "lime"}}},
		{ID: 3},
	}

	// nil limit keeps everything
	assert.Len(t, ApplyBudgetFilter(recipes, nil), 3)

	one := 1
	filtered := ApplyBudgetFilter(recipes, &one)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	// zero is meaningful: pantry-only
	zero := 0
	filtered = ApplyBudgetFilter(recipes, &zero)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestClassifyMealType(t *testing.T) {
	assert.Equal(t, domain.MealTypeBreakfast, classifyMealType([]string{"morning meal"}))
	assert.Equal(t, domain.MealTypeLunch, classifyMealType([]string{"salad"}))
	assert.Equal(t, domain.MealTypeDinner, classifyMealType([]string{"main course"}))
	assert.Equal(t, domain.MealTypeUnknown, classifyMealType([]string{"beverage"}))
	assert.Equal(t, domain.MealTypeUnknown, classifyMealType(nil))

	// dish types match keywords exactly, not as substrings
	assert.Equal(t, domain.MealTypeUnknown, classifyMealType([]string{"salad dressing"}))
	assert.Equal(t, domain.MealTypeLunch, classifyMealType([]string{"Salad"}))

	// breakfast outranks lunch when both appear
	assert.Equal(t, domain.MealTypeBreakfast, classifyMealType([]string{"snack", "brunch"}))
}

func TestParseNutrition(t *testing.T) {
	parsed := parseNutrition([]nutrient{
		{Name: "calories", Amount: 450},
		{Name: "Protein", Amount: 22.5},
		{Name: "Carbohydrates", Amount: 51},
	})
	require.NotNil(t, parsed)
	assert.Equal(t, 450.0, parsed.Calories)
	assert.Equal(t, 22.5, parsed.Protein)
	assert.Equal(t, 51.0, parsed.Carbs)
	assert.Equal(t, 0.0, parsed.Fat, "missing nutrient reads as zero")

	assert.Nil(t, parseNutrition(nil))
}
