package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionType string

const (
	TypeEnglish AuctionType = "english"
	TypeDutch   AuctionType = "dutch"
	TypeSealed  AuctionType = "sealed"
	TypeReserve AuctionType = "reserve"
)

type AuctionStatus string

const (
	StatusUpcoming  AuctionStatus = "upcoming"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
	StatusDeleted   AuctionStatus = "deleted"
	StatusStopped   AuctionStatus = "stopped"
	StatusPending   AuctionStatus = "pending"
)

const DefaultBidIncrement = 10

// Bid is one accepted entry of the append-only ledger embedded in Auction.
// Insertion order is significant: a later bid is never accepted at an equal
// amount, so the last entry is always the highest.
type Bid struct {
	BidderID  string
	Amount    decimal.Decimal
	Timestamp time.Time
}

type Auction struct {
	ID                string
	AuctionCode       string
	ParticipationCode string
	Type              AuctionType
	Title             string
	Description       string

	StartingPrice decimal.Decimal
	BidIncrement  decimal.Decimal
	MinimumPrice  *decimal.Decimal
	ReservePrice  *decimal.Decimal

	CurrentBid      decimal.Decimal
	HighestBidderID string
	Bids            []Bid

	StartDate time.Time
	EndDate   time.Time
	Status    AuctionStatus

	SellerID string

	NeedsApproval  bool
	ApprovalStatus ApprovalStatus
	ReviewedBy     string
	ReviewedAt     *time.Time
	AdminNotes     string

	// Version is bumped on every persisted write. AuctionRepository.Update
	// rejects a stale version so a bid and a lifecycle transition racing on
	// the same auction cannot overwrite each other.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveStatus recomputes the lifecycle status from the schedule. Deleted and
// pending are sticky and survive any clock. Every read and write path goes
// through this, not only the scheduler, since clients read between ticks.
func (a *Auction) DeriveStatus(now time.Time) AuctionStatus {
	switch a.Status {
	case StatusDeleted, StatusPending:
		return a.Status
	}
	switch {
	case now.Before(a.StartDate):
		return StatusUpcoming
	case now.Before(a.EndDate):
		return StatusActive
	default:
		return StatusEnded
	}
}

// ApplyBid appends an accepted bid to the ledger and recomputes the derived
// fields in the same step. CurrentBid and HighestBidderID must never be set
// outside of this method.
func (a *Auction) ApplyBid(bidderID string, amount decimal.Decimal, now time.Time) Bid {
	bid := Bid{BidderID: bidderID, Amount: amount, Timestamp: now}
	a.Bids = append(a.Bids, bid)
	a.CurrentBid = amount
	a.HighestBidderID = bidderID
	return bid
}

// FloorPrice returns the settlement floor of a reserve auction.
func (a *Auction) FloorPrice() decimal.Decimal {
	if a.MinimumPrice != nil {
		return *a.MinimumPrice
	}
	if a.ReservePrice != nil {
		return *a.ReservePrice
	}
	return decimal.Zero
}
