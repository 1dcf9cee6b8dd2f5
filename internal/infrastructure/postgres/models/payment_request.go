package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequestModel rows are unique per (auction, user, payment_type).
// The winner-settlement flow upgrades a participation row in place rather
// than inserting a second row for the same pair.
type PaymentRequestModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	AuctionID   string `gorm:"type:uuid;uniqueIndex:idx_payment_key;not null"`
	UserID      string `gorm:"uniqueIndex:idx_payment_key;not null"`
	PaymentType string `gorm:"uniqueIndex:idx_payment_key;not null"`

	Amount        decimal.Decimal `gorm:"type:numeric"`
	Method        string
	ScreenshotURL string
	TransactionID string
	PaymentDate   time.Time

	VerificationStatus string `gorm:"index"`
	VerifiedBy         string
	VerifiedAt         *time.Time
	AdminNotes         string

	BiddingEligibleFrom *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
