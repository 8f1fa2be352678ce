package services

import (
	"fmt"

	"saham/internal/models"
	"saham/internal/repositories"
	"saham/pkg/rabbitmq"
)

// StopOrderService handles business logic for stop orders.
type StopOrderService struct {
	orderRepo repositories.StopOrderRepository
	quoter    PriceQuoter
	mqClient  *rabbitmq.Client
}

// NewStopOrderService creates a new StopOrderService.
func NewStopOrderService(orderRepo repositories.StopOrderRepository, quoter PriceQuoter, mqClient *rabbitmq.Client) *StopOrderService {
	return &StopOrderService{
		orderRepo: orderRepo,
		quoter:    quoter,
		mqClient:  mqClient,
	}
}

// CreateStopOrder computes a trigger price offset from startingPrice by
// percent in the given direction, records the current quote alongside it,
// and persists the order. The order is a static record: nothing evaluates
// it against later prices.
func (s *StopOrderService) CreateStopOrder(owner, ticker string, startingPrice float64, direction models.Direction, percent float64) (*models.StopOrder, error) {
	if percent < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPercent, percent)
	}

	currentPrice, err := s.quoter.GetCurrentPrice(ticker)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrQuoteUnavailable, ticker, err)
	}

	fraction := percent / 100
	var desiredPrice float64
	if direction == models.DirectionUp {
		desiredPrice = startingPrice + startingPrice*fraction
	} else {
		desiredPrice = startingPrice - startingPrice*fraction
	}

	order := &models.StopOrder{
		OwnerUsername: owner,
		Ticker:        ticker,
		StartingPrice: startingPrice,
		CurrentPrice:  currentPrice,
		DesiredPrice:  desiredPrice,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create stop order: %w", err)
	}

	publishActivity(s.mqClient, "stoporder.created", map[string]interface{}{
		"orderID":      order.ID,
		"owner":        order.OwnerUsername,
		"ticker":       order.Ticker,
		"desiredPrice": order.DesiredPrice,
	})

	return order, nil
}

// ListStopOrders returns the owner's stop orders in creation order.
func (s *StopOrderService) ListStopOrders(owner string) ([]models.StopOrder, error) {
	return s.orderRepo.ListByOwner(owner)
}
