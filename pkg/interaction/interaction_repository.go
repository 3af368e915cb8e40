package interaction

import (
	"context"

	"pantry-planner/domain"
	"pantry-planner/entities"

	"gorm.io/gorm"
)

type (
	InteractionRepository interface {
		Create(ctx context.Context, interaction *entities.RecipeInteraction) error
		GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error)
		GetPopularityByIDs(ctx context.Context, ids []int64) ([]domain.PopularRecipe, error)
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *entities.RecipeInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) GetPopularRecipes(ctx context.Context, limit int) ([]domain.PopularRecipe, error) {
	var popular []domain.PopularRecipe
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Select(`recipe_id,
			MAX(recipe_title) AS recipe_title,
			MAX(recipe_image_url) AS recipe_image_url,
			SUM(CASE WHEN interaction_type = 'view' THEN 1 ELSE 0 END) AS view_count,
			SUM(CASE WHEN interaction_type = 'like' THEN 1 ELSE 0 END) AS like_count,
			COUNT(*) AS total_interactions`).
		Group("recipe_id").
		Order("total_interactions DESC").
		Limit(limit).
		Scan(&popular).Error; err != nil {
		return nil, err
	}
	return popular, nil
}

func (r *interactionRepository) GetPopularityByIDs(ctx context.Context, ids []int64) ([]domain.PopularRecipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var popular []domain.PopularRecipe
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInteraction{}).
		Select(`recipe_id,
			MAX(recipe_title) AS recipe_title,
			MAX(recipe_image_url) AS recipe_image_url,
			SUM(CASE WHEN interaction_type = 'view' THEN 1 ELSE 0 END) AS view_count,
			SUM(CASE WHEN interaction_type = 'like' THEN 1 ELSE 0 END) AS like_count,
			COUNT(*) AS total_interactions`).
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&popular).Error; err != nil {
		return nil, err
	}
	return popular, nil
}
