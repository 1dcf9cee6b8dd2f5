package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner is the at-most-one-per-auction settlement record. It is created
// exactly once when an auction ends with a highest bidder and is the source
// of truth for who owes what; only the Notified flag mutates afterwards.
type Winner struct {
	ID        string
	AuctionID string
	UserID    string
	FullName  string
	Email     string
	Phone     string
	Amount    decimal.Decimal
	Notified  bool
	CreatedAt time.Time
}

type WinnerRepository interface {
	// CreateIfAbsent inserts the winner unless a record for the auction
	// already exists, in which case ErrWinnerExists is returned. The check
	// and insert are one atomic operation, two overlapping sweeps cannot
	// both insert.
	CreateIfAbsent(winner *Winner) error
	GetWinnerByAuctionID(auctionID string) (*Winner, error)
	MarkNotified(winnerID string) error
}
