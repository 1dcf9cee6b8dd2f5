package lifecycle

import (
	"context"
	"time"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/metrics"
)

type LifecycleUsecase interface {
	// SweepOnce runs one full pass: every active auction past its end date
	// is transitioned to ended and settled. Safe to run concurrently and
	// repeatedly.
	SweepOnce(ctx context.Context) error
	// ForceEnd lets a seller close their own still-active auction
	// immediately. Shares the per-auction completion path with the sweep.
	ForceEnd(ctx context.Context, auctionID, callerID string) (*domain.Auction, error)
	CancelAuction(auctionID, callerID string) (*domain.Auction, error)
	DeleteAuction(auctionID, adminID string) (*domain.Auction, error)
}

type DefaultLifecycleUsecase struct {
	auctionRepo domain.AuctionRepository
	winnerRepo  domain.WinnerRepository
	users       domain.UserDirectory
	publisher   domain.EventPublisherPort
	metrics     *metrics.AuctionMetrics

	// Now is the sweep clock. Overridable in tests.
	Now func() time.Time
}

func NewDefaultLifecycleUsecase(
	auctionRepo domain.AuctionRepository,
	winnerRepo domain.WinnerRepository,
	users domain.UserDirectory,
	publisher domain.EventPublisherPort,
	auctionMetrics *metrics.AuctionMetrics,
) *DefaultLifecycleUsecase {
	return &DefaultLifecycleUsecase{
		auctionRepo: auctionRepo,
		winnerRepo:  winnerRepo,
		users:       users,
		publisher:   publisher,
		metrics:     auctionMetrics,
		Now:         time.Now,
	}
}
