package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display-only audit ledgers, written best-effort after a bid is accepted.

type UserBidEntryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	BidderID    string `gorm:"index;not null"`
	AuctionID   string `gorm:"type:uuid;index"`
	AuctionCode string
	SellerID    string
	Amount      decimal.Decimal `gorm:"type:numeric"`
	PlacedAt    time.Time
}

type SellerBidEntryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	SellerID    string `gorm:"index;not null"`
	AuctionID   string `gorm:"type:uuid;index"`
	AuctionCode string
	BidderID    string
	Amount      decimal.Decimal `gorm:"type:numeric"`
	PlacedAt    time.Time
}
