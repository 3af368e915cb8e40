package recipe

import (
	"context"
	"time"

	"pantry-planner/entities"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		LookupByIngredientOverlap(ctx context.Context, ingredients []string, fetchedAfter time.Time) ([]*entities.CachedRecipe, error)
		GetFreshIDs(ctx context.Context, ids []int64, fetchedAfter time.Time) ([]int64, error)
		GetByIDs(ctx context.Context, ids []int64) ([]*entities.CachedRecipe, error)
		Upsert(ctx context.Context, recipes []*entities.CachedRecipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// LookupByIngredientOverlap returns fresh cached recipes whose ingredient
// names overlap the query; the array-overlap operator keeps the filter on the
// database side.
func (r *recipeRepository) LookupByIngredientOverlap(ctx context.Context, ingredients []string, fetchedAfter time.Time) ([]*entities.CachedRecipe, error) {
	var recipes []*entities.CachedRecipe
	if err := r.db.WithContext(ctx).
		Where("ingredient_names && ?", pq.StringArray(ingredients)).
		Where("last_fetched_at >= ?", fetchedAfter).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetFreshIDs returns the subset of ids that already have a fresh cache row.
func (r *recipeRepository) GetFreshIDs(ctx context.Context, ids []int64, fetchedAfter time.Time) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var fresh []int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CachedRecipe{}).
		Where("spoonacular_id IN ?", ids).
		Where("last_fetched_at >= ?", fetchedAfter).
		Pluck("spoonacular_id", &fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

func (r *recipeRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.CachedRecipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var recipes []*entities.CachedRecipe
	if err := r.db.WithContext(ctx).
		Where("spoonacular_id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Upsert inserts or refreshes rows keyed by spoonacular_id.
func (r *recipeRepository) Upsert(ctx context.Context, recipes []*entities.CachedRecipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "spoonacular_id"}},
			UpdateAll: true,
		}).
		Create(recipes).Error
}
