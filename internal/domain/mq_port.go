package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WinnerEvent announces a settled auction to the outside. Publishing is
// best-effort: the Winner record, not the event, is the source of truth.
type WinnerEvent struct {
	AuctionID   string          `json:"auction_id"`
	AuctionCode string          `json:"auction_code"`
	UserID      string          `json:"user_id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Amount      decimal.Decimal `json:"amount"`
	EndedAt     time.Time       `json:"ended_at"`
}

type BidEvent struct {
	AuctionID   string          `json:"auction_id"`
	AuctionCode string          `json:"auction_code"`
	BidderID    string          `json:"bidder_id"`
	SellerID    string          `json:"seller_id"`
	Amount      decimal.Decimal `json:"amount"`
	PlacedAt    time.Time       `json:"placed_at"`
}

type PaymentEvent struct {
	PaymentID   string `json:"payment_id"`
	AuctionID   string `json:"auction_id"`
	UserID      string `json:"user_id"`
	PaymentType string `json:"payment_type"`
	Status      string `json:"status"`
	AdminNotes  string `json:"admin_notes,omitempty"`
}

// EventPublisherPort is implemented by the kafka infrastructure. Failures
// are logged by callers and never surfaced as failures of the triggering
// operation.
type EventPublisherPort interface {
	PublishWinner(event WinnerEvent) error
	PublishBid(event BidEvent) error
	PublishPayment(event PaymentEvent) error
}
