package models

import "gorm.io/gorm"

// Direction tells which way a stop order's trigger price is offset from
// the starting price.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// StopOrder represents a user-defined target price computed from a starting
// price and a percentage offset. It is a static record: nothing in the
// system compares live prices against DesiredPrice.
type StopOrder struct {
	gorm.Model
	OwnerUsername string  `json:"owner_username" gorm:"index;type:varchar(60)"`
	Ticker        string  `json:"ticker" gorm:"type:varchar(15)"`
	StartingPrice float64 `json:"starting_price"`
	CurrentPrice  float64 `json:"current_price"` // quote at creation time
	DesiredPrice  float64 `json:"desired_price"`
}
