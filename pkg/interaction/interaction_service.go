package interaction

import (
	"context"

	"pantry-planner/domain"
	"pantry-planner/entities"

	"github.com/google/uuid"
)

const defaultPopularLimit = 20

type (
	InteractionService interface {
		SaveInteraction(ctx context.Context, req domain.SaveInteractionRequest) error
		GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error)
		PopularityByID(ctx context.Context, ids []int64) (map[int64]domain.PopularRecipe, error)
	}

	interactionService struct {
		interactionRepository InteractionRepository
	}
)

func NewInteractionService(interactionRepository InteractionRepository) InteractionService {
	return &interactionService{interactionRepository: interactionRepository}
}

func (s *interactionService) SaveInteraction(ctx context.Context, req domain.SaveInteractionRequest) error {
	if req.InteractionType != "view" && req.InteractionType != "like" {
		return domain.ErrInvalidInteractionType
	}

	return s.interactionRepository.Create(ctx, &entities.RecipeInteraction{
		ID:              uuid.New(),
		RecipeID:        req.RecipeID,
		RecipeTitle:     req.RecipeTitle,
		RecipeImageURL:  req.RecipeImageURL,
		InteractionType: req.InteractionType,
	})
}

func (s *interactionService) GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	return s.interactionRepository.GetPopularRecipes(ctx, limit)
}

// PopularityByID keys popularity counts by recipe ID for the scorer.
func (s *interactionService) PopularityByID(ctx context.Context, ids []int64) (map[int64]domain.PopularRecipe, error) {
	popular, err := s.interactionRepository.GetPopularityByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.PopularRecipe, len(popular))
	for _, p := range popular {
		byID[p.RecipeID] = p
	}
	return byID, nil
}
