package swipe

import (
	"context"

	"pantry-planner/domain"
	"pantry-planner/pkg/interaction"
)

type (
	SwipeService interface {
		ScoreRecipes(ctx context.Context, req domain.ScoreRecipesRequest) ([]domain.ScoredRecipe, error)
		BuildSessions(ctx context.Context, req domain.BuildSessionsRequest) (map[domain.MealType]*Session, error)
	}

	swipeService struct {
		interactionService interaction.InteractionService
		opts               ScoreOptions
	}
)

func NewSwipeService(interactionService interaction.InteractionService, opts ScoreOptions) SwipeService {
	if opts.BuyPenaltyScale <= 0 {
		opts.BuyPenaltyScale = DefaultScoreOptions().BuyPenaltyScale
	}
	return &swipeService{
		interactionService: interactionService,
		opts:               opts,
	}
}

func (s *swipeService) ScoreRecipes(ctx context.Context, req domain.ScoreRecipesRequest) ([]domain.ScoredRecipe, error) {
	ids := make([]int64, 0, len(req.Recipes))
	for _, r := range req.Recipes {
		ids = append(ids, r.ID)
	}

	popular, err := s.interactionService.PopularityByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ScoreRecipes(req.Recipes, req.Preferences, popular, s.opts), nil
}

func (s *swipeService) BuildSessions(ctx context.Context, req domain.BuildSessionsRequest) (map[domain.MealType]*Session, error) {
	return BuildSessions(req.Recipes, req.MealTypes, req.SessionSize), nil
}
