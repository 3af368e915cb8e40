package recipe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pantry-planner/domain"

	"github.com/go-resty/resty/v2"
)

type (
	// SpoonacularClient wraps the external recipe provider. All failures that
	// leave the cache usable are wrapped in domain.ErrProviderUnavailable.
	SpoonacularClient interface {
		FindByIngredients(ctx context.Context, ingredients []string, diet string, number int) ([]SearchResult, error)
		InformationBulk(ctx context.Context, ids []int64) ([]RecipeDetail, error)
	}

	spoonacularClient struct {
		client *resty.Client
		apiKey string
	}

	SearchResult struct {
		ID                    int64              `json:"id"`
		Title                 string             `json:"title"`
		Image                 string             `json:"image"`
		UsedIngredientCount   int                `json:"usedIngredientCount"`
		MissedIngredientCount int                `json:"missedIngredientCount"`
		UsedIngredients       []searchIngredient `json:"usedIngredients"`
		MissedIngredients     []searchIngredient `json:"missedIngredients"`
	}

	searchIngredient struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Original string  `json:"original"`
	}

	RecipeDetail struct {
		ID                  int64              `json:"id"`
		Title               string             `json:"title"`
		Image               string             `json:"image"`
		ReadyInMinutes      int                `json:"readyInMinutes"`
		SourceURL           string             `json:"sourceUrl"`
		Instructions        string             `json:"instructions"`
		Cuisines            []string           `json:"cuisines"`
		Diets               []string           `json:"diets"`
		DishTypes           []string           `json:"dishTypes"`
		ExtendedIngredients []searchIngredient `json:"extendedIngredients"`
		Nutrition           *detailNutrition   `json:"nutrition"`
	}

	detailNutrition struct {
		Nutrients []nutrient `json:"nutrients"`
	}

	nutrient struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}
)

func NewSpoonacularClient(baseURL, apiKey string) SpoonacularClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(25 * time.Second)

	return &spoonacularClient{
		client: client,
		apiKey: apiKey,
	}
}

func (c *spoonacularClient) FindByIngredients(ctx context.Context, ingredients []string, diet string, number int) ([]SearchResult, error) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetQueryParam("ingredients", strings.Join(ingredients, ",")).
		SetQueryParam("number", strconv.Itoa(number)).
		SetQueryParam("ranking", "2").
		SetQueryParam("ignorePantry", "true")
	if diet != "" {
		req.SetQueryParam("diet", diet)
	}

	var results []SearchResult
	resp, err := req.SetResult(&results).Get("/recipes/findByIngredients")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode())
	}
	return results, nil
}

func (c *spoonacularClient) InformationBulk(ctx context.Context, ids []int64) ([]RecipeDetail, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, strconv.FormatInt(id, 10))
	}

	var details []RecipeDetail
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetQueryParam("ids", strings.Join(idStrs, ",")).
		SetQueryParam("includeNutrition", "true").
		SetResult(&details).
		Get("/recipes/informationBulk")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode())
	}
	return details, nil
}
