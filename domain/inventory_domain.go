package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessAddShipment         = "shipment added successfully"
	MessageSuccessDeleteShipment      = "shipment deleted successfully"
	MessageSuccessGetShipments        = "shipments retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedAddShipment         = "failed to add shipment"
	MessageFailedDeleteShipment      = "failed to delete shipment"
	MessageFailedGetShipments        = "failed to retrieve shipments"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrInvalidDate           = errors.New("invalid date")
)

type (
	AddInventoryItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Category      string   `json:"category" validate:"required"`
		Quantity      float64  `json:"quantity" validate:"min=0"`
		Unit          string   `json:"unit" validate:"required"`
		DietaryTags   []string `json:"dietary_tags"`
		DateAvailable string   `json:"date_available,omitempty"` // ISO date; empty = available now
	}

	UpdateInventoryItemRequest struct {
		Name          string   `json:"name" validate:"omitempty"`
		Category      string   `json:"category" validate:"omitempty"`
		Quantity      *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit          string   `json:"unit" validate:"omitempty"`
		DietaryTags   []string `json:"dietary_tags"`
		DateAvailable string   `json:"date_available,omitempty"`
	}

	InventoryItemResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Category      string    `json:"category"`
		Quantity      float64   `json:"quantity"`
		Unit          string    `json:"unit"`
		DietaryTags   []string  `json:"dietary_tags"`
		DateAvailable string    `json:"date_available,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	AddShipmentRequest struct {
		ItemName         string  `json:"item_name" validate:"required"`
		Category         string  `json:"category"`
		ExpectedQuantity float64 `json:"expected_quantity" validate:"min=0"`
		Unit             string  `json:"unit" validate:"required"`
		ExpectedDate     string  `json:"expected_date" validate:"required"`
		Notes            string  `json:"notes,omitempty"`
	}

	ShipmentResponse struct {
		ID               string  `json:"id"`
		ItemName         string  `json:"item_name"`
		Category         string  `json:"category"`
		ExpectedQuantity float64 `json:"expected_quantity"`
		Unit             string  `json:"unit"`
		ExpectedDate     string  `json:"expected_date"`
		Notes            string  `json:"notes,omitempty"`
	}
)
