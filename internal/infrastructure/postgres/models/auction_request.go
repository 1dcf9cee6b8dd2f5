package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionRequestModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	AuctionCode       string `gorm:"uniqueIndex:idx_request_code"`
	ParticipationCode string `gorm:"uniqueIndex:idx_request_participation_code"`
	Type              string
	Title             string
	Description       string

	StartingPrice decimal.Decimal  `gorm:"type:numeric"`
	BidIncrement  decimal.Decimal  `gorm:"type:numeric"`
	MinimumPrice  *decimal.Decimal `gorm:"type:numeric"`
	ReservePrice  *decimal.Decimal `gorm:"type:numeric"`

	StartDate time.Time
	EndDate   time.Time

	SellerID string `gorm:"index"`

	ApprovalStatus   string `gorm:"index"`
	SubmittedAt      time.Time
	ReviewedBy       string
	ReviewedAt       *time.Time
	AdminNotes       string
	CreatedAuctionID string `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
