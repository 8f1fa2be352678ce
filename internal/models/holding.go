package models

import "gorm.io/gorm"

// Holding represents a recorded purchase of shares at a price.
// Rows are append-only: a sale references a holding but never mutates it.
type Holding struct {
	gorm.Model
	OwnerUsername string  `json:"owner_username" gorm:"index;type:varchar(60)"`
	Ticker        string  `json:"ticker" gorm:"type:varchar(15)"`
	PurchasePrice float64 `json:"purchase_price"`
	NumShares     float64 `json:"num_shares"`
}
