package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	AuctionCode       string `gorm:"uniqueIndex:idx_auction_code"`
	ParticipationCode string `gorm:"uniqueIndex:idx_auction_participation_code"`
	Type              string `gorm:"index"`
	Title             string
	Description       string

	StartingPrice decimal.Decimal  `gorm:"type:numeric"`
	BidIncrement  decimal.Decimal  `gorm:"type:numeric"`
	MinimumPrice  *decimal.Decimal `gorm:"type:numeric"`
	ReservePrice  *decimal.Decimal `gorm:"type:numeric"`

	CurrentBid      decimal.Decimal `gorm:"type:numeric"`
	HighestBidderID string
	// Bids is the embedded append-only ledger, serialized as JSONB so the
	// ledger and the derived fields above land in one row write.
	Bids string `gorm:"type:jsonb"`

	StartDate time.Time
	EndDate   time.Time `gorm:"index:idx_status_end_date"`
	Status    string    `gorm:"index:idx_status_end_date"`

	SellerID string `gorm:"index"`

	NeedsApproval  bool
	ApprovalStatus string
	ReviewedBy     string
	ReviewedAt     *time.Time
	AdminNotes     string

	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
