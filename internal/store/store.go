package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wattcompare-backend/internal/model"
)

// Store defines the interface for all appliance persistence operations.
// Records are append-only: there are no update or delete operations.
type Store interface {
	// Insert persists a new appliance and returns it with its assigned id
	// and creation timestamp.
	Insert(ctx context.Context, name string, energyKwh *float64, price, energyRate float64) (model.Appliance, error)
	// ListAll returns every stored appliance in the store's natural
	// retrieval order.
	ListAll(ctx context.Context) ([]model.Appliance, error)
	// GetByIDs returns the 0..2 appliances matching the two ids.
	GetByIDs(ctx context.Context, id1, id2 int64) ([]model.Appliance, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(ctx context.Context, name string, energyKwh *float64, price, energyRate float64) (model.Appliance, error) {
	appliance := model.Appliance{
		Name:       name,
		EnergyKwh:  energyKwh,
		Price:      price,
		EnergyRate: energyRate,
	}
	if err := s.db.WithContext(ctx).Create(&appliance).Error; err != nil {
		return model.Appliance{}, fmt.Errorf("failed to insert appliance: %w", err)
	}
	return appliance, nil
}

func (s *gormStore) ListAll(ctx context.Context) ([]model.Appliance, error) {
	appliances := make([]model.Appliance, 0)
	if err := s.db.WithContext(ctx).Find(&appliances).Error; err != nil {
		return nil, fmt.Errorf("failed to list appliances: %w", err)
	}
	return appliances, nil
}

func (s *gormStore) GetByIDs(ctx context.Context, id1, id2 int64) ([]model.Appliance, error) {
	var appliances []model.Appliance
	if err := s.db.WithContext(ctx).Where("id IN ?", []int64{id1, id2}).Find(&appliances).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch appliances %d and %d: %w", id1, id2, err)
	}
	return appliances, nil
}
