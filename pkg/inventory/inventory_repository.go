package inventory

import (
	"context"
	"time"

	"pantry-planner/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]*entities.InventoryItem, error)
		GetAvailableItems(ctx context.Context, asOf time.Time) ([]*entities.InventoryItem, error)
		GetFutureItems(ctx context.Context, after time.Time) ([]*entities.InventoryItem, error)

		AddShipment(ctx context.Context, shipment *entities.Shipment) error
		DeleteShipment(ctx context.Context, id string) error
		GetShipments(ctx context.Context) ([]*entities.Shipment, error)
		GetPendingShipments(ctx context.Context, asOf time.Time) ([]*entities.Shipment, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetAvailableItems returns items usable today: no availability date, or a
// date that has already passed.
func (r *inventoryRepository) GetAvailableItems(ctx context.Context, asOf time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("date_available IS NULL OR date_available <= ?", asOf).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetFutureItems(ctx context.Context, after time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("date_available IS NOT NULL AND date_available > ?", after).
		Order("date_available asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) AddShipment(ctx context.Context, shipment *entities.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *inventoryRepository) DeleteShipment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Shipment{}).Error
}

func (r *inventoryRepository) GetShipments(ctx context.Context) ([]*entities.Shipment, error) {
	var shipments []*entities.Shipment
	if err := r.db.WithContext(ctx).Order("expected_date asc").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *inventoryRepository) GetPendingShipments(ctx context.Context, asOf time.Time) ([]*entities.Shipment, error) {
	var shipments []*entities.Shipment
	if err := r.db.WithContext(ctx).
		Where("expected_date >= ?", asOf).
		Order("expected_date asc").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}
