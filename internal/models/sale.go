package models

import "gorm.io/gorm"

// Sale represents a recorded disposal event. HoldingID is a soft reference
// to the holding being sold, not a foreign key, and the sale is not
// reconciled against the holding's remaining shares.
type Sale struct {
	gorm.Model
	OwnerUsername string  `json:"owner_username" gorm:"index;type:varchar(60)"`
	HoldingID     uint    `json:"holding_id"`
	NumSharesSold float64 `json:"num_shares_sold"`
	SalePrice     float64 `json:"sale_price"`
}
