package handlers

import (
	"pantry-planner/domain"
	"pantry-planner/internal/api/presenters"
	"pantry-planner/pkg/interaction"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InteractionHandler interface {
		SaveInteraction(c *fiber.Ctx) error
		GetPopularRecipes(c *fiber.Ctx) error
	}

	interactionHandler struct {
		interactionService interaction.InteractionService
		validator          *validator.Validate
	}
)

func NewInteractionHandler(interactionService interaction.InteractionService, validator *validator.Validate) InteractionHandler {
	return &interactionHandler{
		interactionService: interactionService,
		validator:          validator,
	}
}

func (h *interactionHandler) SaveInteraction(c *fiber.Ctx) error {
	req := new(domain.SaveInteractionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.interactionService.SaveInteraction(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveInteraction, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveInteraction)
}

func (h *interactionHandler) GetPopularRecipes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	res, err := h.interactionService.GetPopularRecipes(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPopularRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPopularRecipes)
}
