package repositories

import (
	"fmt"

	"saham/internal/models"

	"gorm.io/gorm"
)

// GORMStopOrderRepository is a GORM implementation of StopOrderRepository.
type GORMStopOrderRepository struct {
	db *gorm.DB
}

// NewGORMStopOrderRepository creates a new instance of GORMStopOrderRepository.
func NewGORMStopOrderRepository(db *gorm.DB) *GORMStopOrderRepository {
	return &GORMStopOrderRepository{
		db: db,
	}
}

// Create inserts a new stop order.
func (r *GORMStopOrderRepository) Create(order *models.StopOrder) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create stop order: %w", err)
	}
	return nil
}

// ListByOwner retrieves all stop orders for an owner, oldest first.
func (r *GORMStopOrderRepository) ListByOwner(owner string) ([]models.StopOrder, error) {
	var orders []models.StopOrder
	if err := r.db.Where("owner_username = ?", owner).Order("id asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list stop orders for %s: %w", owner, err)
	}
	return orders, nil
}
