package repositories

import "saham/internal/models"

// HoldingRepository defines the interface for holding data access.
// Holdings are append-only; there is no update or delete.
type HoldingRepository interface {
	Create(holding *models.Holding) error
	ListByOwner(owner string) ([]models.Holding, error)
}
