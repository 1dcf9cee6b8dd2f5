package domain

import "time"

type AuctionRepository interface {
	CreateAuction(auction *Auction) (string, error)
	GetAuctionByID(auctionID string) (*Auction, error)
	// Update persists the auction with an optimistic version check: the row
	// is written only if its stored version still equals auction.Version,
	// otherwise ErrVersionConflict is returned. On success auction.Version
	// is bumped.
	Update(auction *Auction) error
	// FindExpiredActive returns auctions whose end date has passed and
	// whose stored status is still upcoming or active. The stored value can
	// lag the schedule, nothing rewrites it between reads, so both
	// schedule-live statuses are candidates. Input for the lifecycle sweep.
	FindExpiredActive(now time.Time) ([]*Auction, error)
	// CodeInUse reports whether auctionCode or participationCode collides
	// with a live auction other than excludeAuctionID.
	CodeInUse(auctionCode, participationCode, excludeAuctionID string) (bool, error)
}
