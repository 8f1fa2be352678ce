package services

import (
	"fmt"
	"log"

	"saham/internal/models"
	"saham/internal/repositories"
	"saham/pkg/rabbitmq"
)

// PriceQuoter fetches the latest intraday price for a ticker. Implemented
// by pkg/marketdata; tests substitute their own.
type PriceQuoter interface {
	GetCurrentPrice(ticker string) (float64, error)
}

// HoldingView is one row of the portfolio page: a holding plus its live
// price. LivePrice is nil when the quote could not be fetched.
type HoldingView struct {
	Holding   models.Holding `json:"holding"`
	LivePrice *float64       `json:"live_price"`
}

// PortfolioService handles business logic for holdings and sales.
type PortfolioService struct {
	holdingRepo repositories.HoldingRepository
	saleRepo    repositories.SaleRepository
	quoter      PriceQuoter
	mqClient    *rabbitmq.Client
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(holdingRepo repositories.HoldingRepository, saleRepo repositories.SaleRepository, quoter PriceQuoter, mqClient *rabbitmq.Client) *PortfolioService {
	return &PortfolioService{
		holdingRepo: holdingRepo,
		saleRepo:    saleRepo,
		quoter:      quoter,
		mqClient:    mqClient,
	}
}

// AddHolding records a stock purchase for the owner. Beyond being numeric,
// price and shares are not range-checked: negative values are accepted.
// That matches the historical behavior of the tracker and tightening it is
// a product decision.
func (s *PortfolioService) AddHolding(owner, ticker string, price, shares float64) (*models.Holding, error) {
	holding := &models.Holding{
		OwnerUsername: owner,
		Ticker:        ticker,
		PurchasePrice: price,
		NumShares:     shares,
	}
	if err := s.holdingRepo.Create(holding); err != nil {
		return nil, fmt.Errorf("failed to add holding: %w", err)
	}

	publishActivity(s.mqClient, "holding.added", map[string]interface{}{
		"holdingID": holding.ID,
		"owner":     holding.OwnerUsername,
		"ticker":    holding.Ticker,
		"price":     holding.PurchasePrice,
		"shares":    holding.NumShares,
	})

	return holding, nil
}

// ListHoldings returns the owner's holdings in creation order.
func (s *PortfolioService) ListHoldings(owner string) ([]models.Holding, error) {
	return s.holdingRepo.ListByOwner(owner)
}

// RecordSale appends a sale event for the owner. The holding ID is not
// verified to exist or to belong to the owner, and the holding's share
// count is not decremented: sales are a bare append-only ledger and
// reconciliation is left to whoever reads it. Do not tighten this without
// a product decision.
func (s *PortfolioService) RecordSale(owner string, holdingID uint, price, shares float64) (*models.Sale, error) {
	sale := &models.Sale{
		OwnerUsername: owner,
		HoldingID:     holdingID,
		NumSharesSold: shares,
		SalePrice:     price,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	publishActivity(s.mqClient, "sale.recorded", map[string]interface{}{
		"saleID":    sale.ID,
		"owner":     sale.OwnerUsername,
		"holdingID": sale.HoldingID,
		"price":     sale.SalePrice,
		"shares":    sale.NumSharesSold,
	})

	return sale, nil
}

// ListSales returns the owner's sale events in creation order.
func (s *PortfolioService) ListSales(owner string) ([]models.Sale, error) {
	return s.saleRepo.ListByOwner(owner)
}

// GetPortfolioView returns the owner's holdings in creation order, each
// with its live price. A failed quote leaves that entry's LivePrice nil
// instead of failing the whole view: one bad ticker must not blank the
// portfolio page.
func (s *PortfolioService) GetPortfolioView(owner string) ([]HoldingView, error) {
	holdings, err := s.holdingRepo.ListByOwner(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to build portfolio view: %w", err)
	}

	views := make([]HoldingView, 0, len(holdings))
	for _, holding := range holdings {
		view := HoldingView{Holding: holding}
		price, err := s.quoter.GetCurrentPrice(holding.Ticker)
		if err != nil {
			log.Printf("Quote for %s unavailable: %v", holding.Ticker, err)
		} else {
			view.LivePrice = &price
		}
		views = append(views, view)
	}
	return views, nil
}
