package bidding

import (
	"time"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type PlaceBidInput struct {
	AuctionID string
	UserID    string
	Amount    decimal.Decimal
}

type PlaceBidOutput struct {
	Auction *domain.Auction
	Bid     domain.Bid
}

type BiddingUsecase interface {
	PlaceBid(input *PlaceBidInput) (*PlaceBidOutput, error)
}

type DefaultBiddingUsecase struct {
	auctionRepo domain.AuctionRepository
	paymentRepo domain.PaymentRepository
	historyRepo domain.BidHistoryRepository
	users       domain.UserDirectory
	publisher   domain.EventPublisherPort
	metrics     *metrics.AuctionMetrics

	// Now is the bid clock. Overridable in tests.
	Now func() time.Time
}

func NewDefaultBiddingUsecase(
	auctionRepo domain.AuctionRepository,
	paymentRepo domain.PaymentRepository,
	historyRepo domain.BidHistoryRepository,
	users domain.UserDirectory,
	publisher domain.EventPublisherPort,
	auctionMetrics *metrics.AuctionMetrics,
) *DefaultBiddingUsecase {
	return &DefaultBiddingUsecase{
		auctionRepo: auctionRepo,
		paymentRepo: paymentRepo,
		historyRepo: historyRepo,
		users:       users,
		publisher:   publisher,
		metrics:     auctionMetrics,
		Now:         time.Now,
	}
}
