package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidHistoryEntry is an audit row written best-effort after a bid is
// accepted. Two ledgers are kept: bids a user placed, and bids received by
// a seller's auctions. Both are display-only, a write failure never fails
// the bid.
type BidHistoryEntry struct {
	ID          string
	AuctionID   string
	AuctionCode string
	BidderID    string
	SellerID    string
	Amount      decimal.Decimal
	PlacedAt    time.Time
}

type BidHistoryRepository interface {
	LogUserBid(entry *BidHistoryEntry) error
	LogSellerBid(entry *BidHistoryEntry) error
	GetUserBids(userID string, page, limit int) ([]*BidHistoryEntry, int64, error)
	GetSellerBids(sellerID string, page, limit int) ([]*BidHistoryEntry, int64, error)
}
