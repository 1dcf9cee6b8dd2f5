package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WinnerModel carries a unique index on auction_id: the conditional insert
// in the repository leans on it so two overlapping sweeps cannot both
// record a winner.
type WinnerModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	AuctionID string          `gorm:"type:uuid;uniqueIndex:idx_winner_auction;not null"`
	UserID    string          `gorm:"not null"`
	FullName  string
	Email     string
	Phone     string
	Amount    decimal.Decimal `gorm:"type:numeric"`
	Notified  bool
	CreatedAt time.Time
}
