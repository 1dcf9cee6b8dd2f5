package approval

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jaevor/go-nanoid"
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type SubmitRequestInput struct {
	SellerID      string           `validate:"required"`
	Type          string           `validate:"required,oneof=english dutch sealed reserve"`
	Title         string           `validate:"required"`
	Description   string           `validate:"required"`
	StartingPrice decimal.Decimal  `validate:"required"`
	BidIncrement  decimal.Decimal  ``
	MinimumPrice  *decimal.Decimal ``
	ReservePrice  *decimal.Decimal ``
	StartDate     time.Time        `validate:"required"`
	EndDate       time.Time        `validate:"required,gtfield=StartDate"`
}

type ReviewRequestInput struct {
	RequestID string
	AdminID   string
	Notes     string
}

type ApprovalUsecase interface {
	// SubmitRequest stages a reserve auction for admin review.
	SubmitRequest(input *SubmitRequestInput) (*domain.AuctionRequest, error)
	// Approve promotes a pending request into a live auction. The auction
	// insert and the request update are one atomic unit.
	Approve(input *ReviewRequestInput) (*domain.Auction, error)
	Reject(input *ReviewRequestInput) (*domain.AuctionRequest, error)
	// CreateAuction creates a non-reserve auction directly, skipping review.
	CreateAuction(input *SubmitRequestInput) (*domain.Auction, error)
}

type DefaultApprovalUsecase struct {
	requestRepo domain.AuctionRequestRepository
	auctionRepo domain.AuctionRepository
	users       domain.UserDirectory
	metrics     *metrics.AuctionMetrics
	validate    *validator.Validate

	codeGen func() string

	// Now is the review clock. Overridable in tests.
	Now func() time.Time
}

// Code alphabet skips ambiguous characters; codes are read out over the
// phone when joining by participation code.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func NewDefaultApprovalUsecase(
	requestRepo domain.AuctionRequestRepository,
	auctionRepo domain.AuctionRepository,
	users domain.UserDirectory,
	auctionMetrics *metrics.AuctionMetrics,
) *DefaultApprovalUsecase {
	gen, err := nanoid.CustomASCII(codeAlphabet, 8)
	if err != nil {
		log.Fatalf("failed to init code generator: %v", err)
	}
	return &DefaultApprovalUsecase{
		requestRepo: requestRepo,
		auctionRepo: auctionRepo,
		users:       users,
		metrics:     auctionMetrics,
		validate:    validator.New(),
		codeGen:     gen,
		Now:         time.Now,
	}
}

func (uc *DefaultApprovalUsecase) requireAdmin(adminID string) error {
	admin, err := uc.users.GetUserByID(adminID)
	if err != nil {
		return err
	}
	if admin.Role != domain.RoleAdmin {
		return domain.NewError(domain.KindForbidden, "", "only admins may review auction requests")
	}
	return nil
}
