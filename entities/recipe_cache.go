package entities

import (
	"time"

	"github.com/lib/pq"
)

// CachedRecipe holds one provider recipe per Spoonacular ID (upsert semantics).
// Ingredients and Nutrition are stored as serialized JSON, matching the
// loosely-structured payloads the provider returns.
type CachedRecipe struct {
	SpoonacularID   int64          `gorm:"primary_key" json:"spoonacular_id"`
	Title           string         `json:"title"`
	ImageURL        string         `json:"image_url,omitempty"`
	IngredientNames pq.StringArray `gorm:"type:text[]" json:"ingredient_names"`
	Ingredients     string         `gorm:"type:text" json:"ingredients"`
	Instructions    string         `gorm:"type:text" json:"instructions,omitempty"`
	Nutrition       string         `gorm:"type:text" json:"nutrition,omitempty"`
	DietaryTags     pq.StringArray `gorm:"type:text[]" json:"dietary_tags"`
	Cuisines        pq.StringArray `gorm:"type:text[]" json:"cuisines"`
	ReadyInMinutes  int            `json:"ready_in_minutes,omitempty"`
	SourceURL       string         `json:"source_url,omitempty"`
	MealType        string         `json:"meal_type"`
	CreatedAt       time.Time      `gorm:"type:timestamp" json:"created_at"`
	LastFetchedAt   time.Time      `gorm:"type:timestamp" json:"last_fetched_at"`
}
