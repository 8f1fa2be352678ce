package repositories

import "saham/internal/models"

// StopOrderRepository defines the interface for stop-order data access.
type StopOrderRepository interface {
	Create(order *models.StopOrder) error
	ListByOwner(owner string) ([]models.StopOrder, error)
}
