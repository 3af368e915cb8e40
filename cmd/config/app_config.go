package config

import (
	"os"
	"time"

	"pantry-planner/internal/api/handlers"
	"pantry-planner/internal/api/routes"
	"pantry-planner/internal/middleware"
	"pantry-planner/internal/utils"
	"pantry-planner/pkg/interaction"
	"pantry-planner/pkg/inventory"
	"pantry-planner/pkg/mealplan"
	"pantry-planner/pkg/recipe"
	"pantry-planner/pkg/swipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Los_Angeles",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)

	// Service
	spoonacularClient := recipe.NewSpoonacularClient(
		utils.GetConfig("SPOONACULAR_BASE_URL"),
		utils.GetConfig("SPOONACULAR_API_KEY"),
	)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, spoonacularClient, inventoryService, recipe.Options{
		CacheMaxAgeDays:   utils.GetIntConfig("CACHE_MAX_AGE_DAYS"),
		CacheHitThreshold: utils.GetIntConfig("CACHE_HIT_THRESHOLD"),
		SearchLimit:       utils.GetIntConfig("SEARCH_LIMIT"),
	})
	interactionService := interaction.NewInteractionService(interactionRepository)
	swipeService := swipe.NewSwipeService(interactionService, swipe.ScoreOptions{
		BuyPenaltyScale: utils.GetIntConfig("BUY_PENALTY_SCALE"),
	})
	mealPlanService := mealplan.NewMealPlanService(inventoryService, mealplan.Options{
		MacroTolerance: utils.GetFloatConfig("MACRO_TOLERANCE"),
	})

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, swipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	interactionHandler := handlers.NewInteractionHandler(interactionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		RecipeHandler:      recipeHandler,
		MealPlanHandler:    mealPlanHandler,
		InventoryHandler:   inventoryHandler,
		InteractionHandler: interactionHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
