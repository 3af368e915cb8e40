package domain

import "errors"

var (
	MessageSuccessSaveInteraction   = "interaction recorded successfully"
	MessageSuccessGetPopularRecipes = "success get popular recipes"

	MessageFailedSaveInteraction   = "failed to record interaction"
	MessageFailedGetPopularRecipes = "failed to get popular recipes"

	ErrInvalidInteractionType = errors.New("interaction_type must be 'view' or 'like'")
)

type (
	SaveInteractionRequest struct {
		RecipeID        int64  `json:"recipe_id" validate:"required"`
		RecipeTitle     string `json:"recipe_title" validate:"required"`
		RecipeImageURL  string `json:"recipe_image_url,omitempty"`
		InteractionType string `json:"interaction_type" validate:"required,oneof=view like"`
	}

	PopularRecipe struct {
		RecipeID          int64  `json:"recipe_id"`
		RecipeTitle       string `json:"recipe_title"`
		RecipeImageURL    string `json:"recipe_image_url,omitempty"`
		ViewCount         int64  `json:"view_count"`
		LikeCount         int64  `json:"like_count"`
		TotalInteractions int64  `json:"total_interactions"`
	}
)
