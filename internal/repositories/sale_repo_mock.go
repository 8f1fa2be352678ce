package repositories

import (
	"sync"

	"saham/internal/models"
)

// MockSaleRepository is an in-memory implementation of SaleRepository.
type MockSaleRepository struct {
	sales  []models.Sale
	nextID uint
	mu     sync.RWMutex
}

// NewMockSaleRepository creates a new instance of MockSaleRepository.
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{
		nextID: 1,
	}
}

// Create appends a new sale event and assigns it the next sequential ID.
func (r *MockSaleRepository) Create(sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, *sale)
	return nil
}

// ListByOwner returns the owner's sales in insertion order.
func (r *MockSaleRepository) ListByOwner(owner string) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Sale, 0)
	for _, s := range r.sales {
		if s.OwnerUsername == owner {
			result = append(result, s)
		}
	}
	return result, nil
}
