package routes

import (
	"pantry-planner/internal/api/handlers"
	"pantry-planner/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	RecipeHandler      handlers.RecipeHandler
	MealPlanHandler    handlers.MealPlanHandler
	InventoryHandler   handlers.InventoryHandler
	InteractionHandler handlers.InteractionHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.MealPlan()
	c.Inventory()
	c.Interactions()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("/score", c.RecipeHandler.ScoreRecipes)
		recipes.Post("/sessions", c.RecipeHandler.BuildSessions)
	}
}

func (c *Config) MealPlan() {
	mealPlan := c.App.Group("/api/v1/meal-plan")
	{
		mealPlan.Post("", c.MealPlanHandler.BuildMealPlan)
		mealPlan.Post("/export", c.MealPlanHandler.ExportCalendar)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory")
	{
		inventory.Post("", c.InventoryHandler.AddItem)
		inventory.Get("", c.InventoryHandler.GetItems)
		inventory.Put("/:id", c.InventoryHandler.UpdateItem)
		inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
	}

	shipments := c.App.Group("/api/v1/shipments")
	{
		shipments.Post("", c.InventoryHandler.AddShipment)
		shipments.Get("", c.InventoryHandler.GetShipments)
		shipments.Delete("/:id", c.InventoryHandler.DeleteShipment)
	}
}

func (c *Config) Interactions() {
	interactions := c.App.Group("/api/v1/interactions")
	{
		interactions.Post("", c.InteractionHandler.SaveInteraction)
		interactions.Get("/popular", c.InteractionHandler.GetPopularRecipes)
	}
}
