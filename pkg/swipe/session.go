package swipe

import (
	"errors"

	"pantry-planner/domain"
)

const DefaultSessionSize = 10

var (
	ErrSessionFinished = errors.New("swipe session already finished")
	ErrNothingToUndo   = errors.New("no swipe to undo")
)

type swipeAction int

const (
	actionLike swipeAction = iota
	actionSkip
)

// Session is one swipe deck for a single meal type. The deck is fixed at
// build time; Like/Skip advance through it and Undo steps back one swipe.
type Session struct {
	MealType domain.MealType       `json:"meal_type"`
	Recipes  []domain.ScoredRecipe `json:"recipes"`

	cursor  int
	liked   []domain.ScoredRecipe
	actions []swipeAction
}

// BuildSessions deals the scored recipes into one deck per requested meal
// type: first the recipes tagged with that type, then untyped recipes
// re-tagged to fill the deck. A deck never repeats a recipe ID.
func BuildSessions(recipes []domain.ScoredRecipe, mealTypes []domain.MealType, sessionSize int) map[domain.MealType]*Session {
	if sessionSize <= 0 {
		sessionSize = DefaultSessionSize
	}

	var unknown []domain.ScoredRecipe
	byType := make(map[domain.MealType][]domain.ScoredRecipe)
	for _, r := range recipes {
		switch r.MealType {
		case domain.MealTypeBreakfast, domain.MealTypeLunch, domain.MealTypeDinner:
			byType[r.MealType] = append(byType[r.MealType], r)
		default:
			unknown = append(unknown, r)
		}
	}

	sessions := make(map[domain.MealType]*Session, len(mealTypes))
	for _, mt := range mealTypes {
		deck := make([]domain.ScoredRecipe, 0, sessionSize)
		seen := make(map[int64]bool, sessionSize)

		for _, r := range byType[mt] {
			if len(deck) == sessionSize {
				break
			}
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			deck = append(deck, r)
		}
		for _, r := range unknown {
			if len(deck) == sessionSize {
				break
			}
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			r.MealType = mt
			deck = append(deck, r)
		}

		sessions[mt] = &Session{MealType: mt, Recipes: deck}
	}
	return sessions
}

// Current returns the recipe under the cursor, or false when the deck is
// exhausted.
func (s *Session) Current() (*domain.ScoredRecipe, bool) {
	if s.Finished() {
		return nil, false
	}
	return &s.Recipes[s.cursor], true
}

func (s *Session) Finished() bool {
	return s.cursor >= len(s.Recipes)
}

func (s *Session) Like() error {
	if s.Finished() {
		return ErrSessionFinished
	}
	s.liked = append(s.liked, s.Recipes[s.cursor])
	s.actions = append(s.actions, actionLike)
	s.cursor++
	return nil
}

func (s *Session) Skip() error {
	if s.Finished() {
		return ErrSessionFinished
	}
	s.actions = append(s.actions, actionSkip)
	s.cursor++
	return nil
}

// Undo reverts the most recent Like or Skip and moves the cursor back.
func (s *Session) Undo() error {
	if len(s.actions) == 0 {
		return ErrNothingToUndo
	}
	last := s.actions[len(s.actions)-1]
	s.actions = s.actions[:len(s.actions)-1]
	s.cursor--
	if last == actionLike {
		s.liked = s.liked[:len(s.liked)-1]
	}
	return nil
}

// Liked returns the recipes accepted so far, in swipe order.
func (s *Session) Liked() []domain.ScoredRecipe {
	return s.liked
}
