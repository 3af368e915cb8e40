package entities

import (
	"time"

	"github.com/google/uuid"
)

type Shipment struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemName         string    `json:"item_name"`
	Category         string    `json:"category"`
	ExpectedQuantity float64   `json:"expected_quantity"`
	Unit             string    `json:"unit"`
	ExpectedDate     time.Time `gorm:"type:date" json:"expected_date"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `gorm:"type:timestamp" json:"created_at"`
}
