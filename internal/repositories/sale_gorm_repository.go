package repositories

import (
	"fmt"

	"saham/internal/models"

	"gorm.io/gorm"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{
		db: db,
	}
}

// Create inserts a new sale event. The referenced holding is not checked
// for existence or ownership.
func (r *GORMSaleRepository) Create(sale *models.Sale) error {
	if err := r.db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// ListByOwner retrieves all sales for an owner, oldest first.
func (r *GORMSaleRepository) ListByOwner(owner string) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.Where("owner_username = ?", owner).Order("id asc").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales for %s: %w", owner, err)
	}
	return sales, nil
}
