package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type SubmitPaymentInput struct {
	AuctionID     string
	UserID        string
	Amount        decimal.Decimal
	Method        string
	ScreenshotURL string
	TransactionID string
}

type ReviewPaymentInput struct {
	PaymentID string
	AdminID   string
	Notes     string
}

type SettlementUsecase interface {
	AmountDueForAuction(auctionID string) (decimal.Decimal, error)
	SubmitParticipationPayment(input *SubmitPaymentInput) (*domain.PaymentRequest, error)
	SubmitWinnerPayment(input *SubmitPaymentInput) (*domain.PaymentRequest, error)
	ApprovePayment(input *ReviewPaymentInput) (*domain.PaymentRequest, error)
	RejectPayment(input *ReviewPaymentInput) (*domain.PaymentRequest, error)
}

type DefaultSettlementUsecase struct {
	auctionRepo domain.AuctionRepository
	paymentRepo domain.PaymentRepository
	winnerRepo  domain.WinnerRepository
	users       domain.UserDirectory
	publisher   domain.EventPublisherPort
	metrics     *metrics.AuctionMetrics

	// Now is the clock used for verification timestamps and bidding
	// eligibility. Overridable in tests.
	Now func() time.Time
}

func NewDefaultSettlementUsecase(
	auctionRepo domain.AuctionRepository,
	paymentRepo domain.PaymentRepository,
	winnerRepo domain.WinnerRepository,
	users domain.UserDirectory,
	publisher domain.EventPublisherPort,
	auctionMetrics *metrics.AuctionMetrics,
) *DefaultSettlementUsecase {
	return &DefaultSettlementUsecase{
		auctionRepo: auctionRepo,
		paymentRepo: paymentRepo,
		winnerRepo:  winnerRepo,
		users:       users,
		publisher:   publisher,
		metrics:     auctionMetrics,
		Now:         time.Now,
	}
}

func newPaymentID() string {
	return uuid.New().String()
}
