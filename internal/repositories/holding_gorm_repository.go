package repositories

import (
	"fmt"

	"saham/internal/models"

	"gorm.io/gorm"
)

// GORMHoldingRepository is a GORM implementation of HoldingRepository.
type GORMHoldingRepository struct {
	db *gorm.DB
}

// NewGORMHoldingRepository creates a new instance of GORMHoldingRepository.
func NewGORMHoldingRepository(db *gorm.DB) *GORMHoldingRepository {
	return &GORMHoldingRepository{
		db: db,
	}
}

// Create inserts a new holding. The row is taken as-is: prices and share
// counts are not range-checked here.
func (r *GORMHoldingRepository) Create(holding *models.Holding) error {
	if err := r.db.Create(holding).Error; err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

// ListByOwner retrieves all holdings for an owner, oldest first.
func (r *GORMHoldingRepository) ListByOwner(owner string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := r.db.Where("owner_username = ?", owner).Order("id asc").Find(&holdings).Error; err != nil {
		return nil, fmt.Errorf("failed to list holdings for %s: %w", owner, err)
	}
	return holdings, nil
}
