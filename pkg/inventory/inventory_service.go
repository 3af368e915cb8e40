package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/pkg/ingredient"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error)

		AddShipment(ctx context.Context, req domain.AddShipmentRequest) (domain.ShipmentResponse, error)
		DeleteShipment(ctx context.Context, id string) error
		GetShipments(ctx context.Context) ([]domain.ShipmentResponse, error)

		InStockNames(ctx context.Context) ([]string, error)
		UpcomingAvailability(ctx context.Context) (map[string]string, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	var dateAvailable *time.Time
	if req.DateAvailable != "" {
		parsed, err := time.Parse("2006-01-02", req.DateAvailable)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidDate
		}
		dateAvailable = &parsed
	}

	item := &entities.InventoryItem{
		ID:            uuid.New(),
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          ingredient.NormalizeUnit(req.Unit),
		DietaryTags:   req.DietaryTags,
		DateAvailable: dateAvailable,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return itemResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrInventoryItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = ingredient.NormalizeUnit(req.Unit)
	}
	if req.DietaryTags != nil {
		item.DietaryTags = req.DietaryTags
	}
	if req.DateAvailable != "" {
		parsed, err := time.Parse("2006-01-02", req.DateAvailable)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidDate
		}
		item.DateAvailable = &parsed
	}

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return itemResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.inventoryRepository.GetItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, itemResponse(item))
	}
	return res, nil
}

func (s *inventoryService) AddShipment(ctx context.Context, req domain.AddShipmentRequest) (domain.ShipmentResponse, error) {
	if req.ExpectedQuantity < 0 {
		return domain.ShipmentResponse{}, domain.ErrInvalidQuantity
	}

	expectedDate, err := time.Parse("2006-01-02", req.ExpectedDate)
	if err != nil {
		return domain.ShipmentResponse{}, domain.ErrInvalidDate
	}

	shipment := &entities.Shipment{
		ID:               uuid.New(),
		ItemName:         req.ItemName,
		Category:         req.Category,
		ExpectedQuantity: req.ExpectedQuantity,
		Unit:             ingredient.NormalizeUnit(req.Unit),
		ExpectedDate:     expectedDate,
		Notes:            req.Notes,
	}

	if err := s.inventoryRepository.AddShipment(ctx, shipment); err != nil {
		return domain.ShipmentResponse{}, err
	}

	return shipmentResponse(shipment), nil
}

func (s *inventoryService) DeleteShipment(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.inventoryRepository.DeleteShipment(ctx, id)
}

func (s *inventoryService) GetShipments(ctx context.Context) ([]domain.ShipmentResponse, error) {
	shipments, err := s.inventoryRepository.GetShipments(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ShipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		res = append(res, shipmentResponse(shipment))
	}
	return res, nil
}

// InStockNames returns the names of every item usable today.
func (s *inventoryService) InStockNames(ctx context.Context) ([]string, error) {
	items, err := s.inventoryRepository.GetAvailableItems(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

// UpcomingAvailability maps lowercased ingredient names to the earliest ISO
// date they become usable, combining future-dated inventory and pending
// shipments.
func (s *inventoryService) UpcomingAvailability(ctx context.Context) (map[string]string, error) {
	now := time.Now()

	future, err := s.inventoryRepository.GetFutureItems(ctx, now)
	if err != nil {
		return nil, err
	}
	pending, err := s.inventoryRepository.GetPendingShipments(ctx, now.Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}

	upcoming := make(map[string]string)
	record := func(name string, date time.Time) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return
		}
		iso := date.Format("2006-01-02")
		if existing, ok := upcoming[key]; !ok || iso < existing {
			upcoming[key] = iso
		}
	}

	for _, item := range future {
		record(item.Name, *item.DateAvailable)
	}
	for _, shipment := range pending {
		record(shipment.ItemName, shipment.ExpectedDate)
	}

	return upcoming, nil
}

func itemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	res := domain.InventoryItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		DietaryTags: item.DietaryTags,
		CreatedAt:   item.CreatedAt,
	}
	if item.DateAvailable != nil {
		res.DateAvailable = item.DateAvailable.Format("2006-01-02")
	}
	return res
}

func shipmentResponse(shipment *entities.Shipment) domain.ShipmentResponse {
	return domain.ShipmentResponse{
		ID:               shipment.ID.String(),
		ItemName:         shipment.ItemName,
		Category:         shipment.Category,
		ExpectedQuantity: shipment.ExpectedQuantity,
		Unit:             shipment.Unit,
		ExpectedDate:     shipment.ExpectedDate.Format("2006-01-02"),
		Notes:            shipment.Notes,
	}
}
