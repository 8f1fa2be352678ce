package repositories

import (
	"sync"

	"saham/internal/models"
)

// MockStopOrderRepository is an in-memory implementation of StopOrderRepository.
type MockStopOrderRepository struct {
	orders []models.StopOrder
	nextID uint
	mu     sync.RWMutex
}

// NewMockStopOrderRepository creates a new instance of MockStopOrderRepository.
func NewMockStopOrderRepository() *MockStopOrderRepository {
	return &MockStopOrderRepository{
		nextID: 1,
	}
}

// Create appends a new stop order and assigns it the next sequential ID.
func (r *MockStopOrderRepository) Create(order *models.StopOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *order)
	return nil
}

// ListByOwner returns the owner's stop orders in insertion order.
func (r *MockStopOrderRepository) ListByOwner(owner string) ([]models.StopOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.StopOrder, 0)
	for _, o := range r.orders {
		if o.OwnerUsername == owner {
			result = append(result, o)
		}
	}
	return result, nil
}
