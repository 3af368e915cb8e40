package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InventoryItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Quantity      float64        `json:"quantity"`
	Unit          string         `json:"unit"`
	DietaryTags   pq.StringArray `gorm:"type:text[]" json:"dietary_tags"`
	DateAvailable *time.Time     `json:"date_available"` // nil = available now
	CreatedAt     time.Time      `gorm:"type:timestamp" json:"created_at"`
}
