package repositories

import (
	"sync"

	"saham/internal/models"
)

// MockHoldingRepository is an in-memory implementation of HoldingRepository.
// Rows are kept in insertion order with sequential IDs, mirroring the
// auto-increment behavior of the real store.
type MockHoldingRepository struct {
	holdings []models.Holding
	nextID   uint
	mu       sync.RWMutex
}

// NewMockHoldingRepository creates a new instance of MockHoldingRepository.
func NewMockHoldingRepository() *MockHoldingRepository {
	return &MockHoldingRepository{
		nextID: 1,
	}
}

// Create appends a new holding and assigns it the next sequential ID.
func (r *MockHoldingRepository) Create(holding *models.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	holding.ID = r.nextID
	r.nextID++
	r.holdings = append(r.holdings, *holding)
	return nil
}

// ListByOwner returns the owner's holdings in insertion order.
func (r *MockHoldingRepository) ListByOwner(owner string) ([]models.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Holding, 0)
	for _, h := range r.holdings {
		if h.OwnerUsername == owner {
			result = append(result, h)
		}
	}
	return result, nil
}
