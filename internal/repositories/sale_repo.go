package repositories

import "saham/internal/models"

// SaleRepository defines the interface for sale data access.
// Sales are append-only events.
type SaleRepository interface {
	Create(sale *models.Sale) error
	ListByOwner(owner string) ([]models.Sale, error)
}
