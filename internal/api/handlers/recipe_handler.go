package handlers

import (
	"errors"
	"strconv"
	"strings"

	"pantry-planner/domain"
	"pantry-planner/internal/api/presenters"
	"pantry-planner/pkg/recipe"
	"pantry-planner/pkg/swipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		ScoreRecipes(c *fiber.Ctx) error
		BuildSessions(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		swipeService  swipe.SwipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, swipeService swipe.SwipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		swipeService:  swipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := domain.FindRecipesRequest{
		Diet:         c.Query("diet", ""),
		ForceRefresh: c.QueryBool("refresh", false),
	}

	if raw := c.Query("ingredients", ""); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				req.Ingredients = append(req.Ingredients, trimmed)
			}
		}
	}
	if raw := c.Query("max_buy_items", ""); raw != "" {
		maxBuy, err := strconv.Atoi(raw)
		if err != nil || maxBuy < 0 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, errors.New("max_buy_items must be a non-negative integer"))
		}
		req.MaxBuyItems = &maxBuy
	}

	res, err := h.recipeService.FindRecipes(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ScoreRecipes(c *fiber.Ctx) error {
	req := new(domain.ScoreRecipesRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.swipeService.ScoreRecipes(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScoreRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScoreRecipes)
}

func (h *recipeHandler) BuildSessions(c *fiber.Ctx) error {
	req := new(domain.BuildSessionsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.swipeService.BuildSessions(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBuildSessions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBuildSessions)
}
