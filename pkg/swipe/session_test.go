package swipe

import (
	"testing"

	"pantry-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredRecipe(id int64, mealType domain.MealType, score int) domain.ScoredRecipe {
	return domain.ScoredRecipe{
		EnrichedRecipe: domain.EnrichedRecipe{ID: id, MealType: mealType},
		Score:          score,
	}
}

func TestBuildSessionsDealsByMealType(t *testing.T) {
	recipes := []domain.ScoredRecipe{
		scoredRecipe(1, domain.MealTypeBreakfast, 90),
		scoredRecipe(2, domain.MealTypeDinner, 80),
		scoredRecipe(3, domain.MealTypeBreakfast, 70),
		scoredRecipe(4, domain.MealTypeLunch, 60),
	}

	sessions := BuildSessions(recipes, []domain.MealType{domain.MealTypeBreakfast, domain.MealTypeDinner}, 10)
	require.Len(t, sessions, 2)

	breakfast := sessions[domain.MealTypeBreakfast]
	require.Len(t, breakfast.Recipes, 2)
	assert.Equal(t, int64(1), breakfast.Recipes[0].ID)
	assert.Equal(t, int64(3), breakfast.Recipes[1].ID)

	// lunch was not requested
	_, ok := sessions[domain.MealTypeLunch]
	assert.False(t, ok)
}

func TestBuildSessionsBackfillsFromUntyped(t *testing.T) {
	recipes := []domain.ScoredRecipe{
		scoredRecipe(1, domain.MealTypeDinner, 90),
		scoredRecipe(2, domain.MealTypeUnknown, 80),
		scoredRecipe(3, "", 70),
	}

	sessions := BuildSessions(recipes, []domain.MealType{domain.MealTypeDinner}, 10)
	deck := sessions[domain.MealTypeDinner].Recipes
	require.Len(t, deck, 3)

	// backfilled recipes are re-tagged to the deck's meal type
	assert.Equal(t, domain.MealTypeDinner, deck[1].MealType)
	assert.Equal(t, domain.MealTypeDinner, deck[2].MealType)
}

func TestBuildSessionsCapsDeckSize(t *testing.T) {
	var recipes []domain.ScoredRecipe
	for i := 0; i < 15; i++ {
		recipes = append(recipes, scoredRecipe(int64(i+1), domain.MealTypeLunch, 100-i))
	}

	sessions := BuildSessions(recipes, []domain.MealType{domain.MealTypeLunch}, 5)
	assert.Len(t, sessions[domain.MealTypeLunch].Recipes, 5)

	// zero size falls back to the default
	sessions = BuildSessions(recipes, []domain.MealType{domain.MealTypeLunch}, 0)
	assert.Len(t, sessions[domain.MealTypeLunch].Recipes, DefaultSessionSize)
}

func TestBuildSessionsNoDuplicateIDs(t *testing.T) {
	recipes := []domain.ScoredRecipe{
		scoredRecipe(1, domain.MealTypeLunch, 90),
		scoredRecipe(1, domain.MealTypeLunch, 90),
		scoredRecipe(1, domain.MealTypeUnknown, 80),
		scoredRecipe(2, domain.MealTypeUnknown, 70),
	}

	deck := BuildSessions(recipes, []domain.MealType{domain.MealTypeLunch}, 10)[domain.MealTypeLunch].Recipes
	require.Len(t, deck, 2)
	assert.Equal(t, int64(1), deck[0].ID)
	assert.Equal(t, int64(2), deck[1].ID)
}

func TestSessionStateMachine(t *testing.T) {
	sessions := BuildSessions([]domain.ScoredRecipe{
		scoredRecipe(1, domain.MealTypeDinner, 90),
		scoredRecipe(2, domain.MealTypeDinner, 80),
		scoredRecipe(3, domain.MealTypeDinner, 70),
	}, []domain.MealType{domain.MealTypeDinner}, 10)
	s := sessions[domain.MealTypeDinner]

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), current.ID)

	require.NoError(t, s.Like())
	require.NoError(t, s.Skip())

	current, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), current.ID)

	require.NoError(t, s.Like())
	assert.True(t, s.Finished())
	assert.Error(t, s.Like())
	assert.Error(t, s.Skip())

	liked := s.Liked()
	require.Len(t, liked, 2)
	assert.Equal(t, int64(1), liked[0].ID)
	assert.Equal(t, int64(3), liked[1].ID)
}

func TestSessionUndo(t *testing.T) {
	sessions := BuildSessions([]domain.ScoredRecipe{
		scoredRecipe(1, domain.MealTypeDinner, 90),
		scoredRecipe(2, domain.MealTypeDinner, 80),
	}, []domain.MealType{domain.MealTypeDinner}, 10)
	s := sessions[domain.MealTypeDinner]

	assert.ErrorIs(t, s.Undo(), ErrNothingToUndo)

	require.NoError(t, s.Like())
	require.NoError(t, s.Undo())
	assert.Empty(t, s.Liked())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), current.ID)

	// undoing a skip only moves the cursor back
	require.NoError(t, s.Skip())
	require.NoError(t, s.Undo())
	current, _ = s.Current()
	assert.Equal(t, int64(1), current.ID)

	// a finished session can still be reopened by undo
	require.NoError(t, s.Like())
	require.NoError(t, s.Like())
	assert.True(t, s.Finished())
	require.NoError(t, s.Undo())
	assert.False(t, s.Finished())
}
