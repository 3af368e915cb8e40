package mealplan

import (
	"context"
	"time"

	"pantry-planner/domain"
	"pantry-planner/pkg/inventory"
)

type (
	MealPlanService interface {
		BuildPlan(ctx context.Context, req domain.BuildMealPlanRequest) (domain.BuildMealPlanResponse, error)
		ExportCalendar(ctx context.Context, req domain.BuildMealPlanRequest) (string, error)
	}

	mealPlanService struct {
		inventoryService inventory.InventoryService
		opts             Options
	}
)

func NewMealPlanService(inventoryService inventory.InventoryService, opts Options) MealPlanService {
	if opts.MacroTolerance <= 0 {
		opts.MacroTolerance = DefaultOptions().MacroTolerance
	}
	return &mealPlanService{
		inventoryService: inventoryService,
		opts:             opts,
	}
}

func (s *mealPlanService) BuildPlan(ctx context.Context, req domain.BuildMealPlanRequest) (domain.BuildMealPlanResponse, error) {
	inStock, err := s.inventoryService.InStockNames(ctx)
	if err != nil {
		return domain.BuildMealPlanResponse{}, err
	}
	arriving, err := s.inventoryService.UpcomingAvailability(ctx)
	if err != nil {
		return domain.BuildMealPlanResponse{}, err
	}

	mealTypes := ActiveMealTypes(req.Preferences)
	plan, buyCount := Assemble(req.LikedRecipes, req.Preferences, inStock, arriving, s.opts)

	return domain.BuildMealPlanResponse{
		Plan:            plan,
		ActiveMealTypes: mealTypes,
		GroceryList:     BuildGroceryList(plan, mealTypes, inStock, arriving),
		BuyItemCount:    buyCount,
	}, nil
}

// ExportCalendar rebuilds the plan from the request and renders it as an
// iCalendar document for the current week.
func (s *mealPlanService) ExportCalendar(ctx context.Context, req domain.BuildMealPlanRequest) (string, error) {
	inStock, err := s.inventoryService.InStockNames(ctx)
	if err != nil {
		return "", err
	}
	arriving, err := s.inventoryService.UpcomingAvailability(ctx)
	if err != nil {
		return "", err
	}

	mealTypes := ActiveMealTypes(req.Preferences)
	plan, _ := Assemble(req.LikedRecipes, req.Preferences, inStock, arriving, s.opts)

	return ExportICS(plan, mealTypes, time.Now()), nil
}
