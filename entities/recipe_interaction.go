package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeInteraction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID        int64     `json:"recipe_id"` // Spoonacular recipe ID
	RecipeTitle     string    `json:"recipe_title"`
	RecipeImageURL  string    `json:"recipe_image_url,omitempty"`
	InteractionType string    `json:"interaction_type"` // "view" or "like"
	CreatedAt       time.Time `gorm:"type:timestamp" json:"created_at"`
}
