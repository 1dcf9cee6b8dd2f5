package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentParticipationFee PaymentType = "participation_fee"
	PaymentWinnerSettlement PaymentType = "winner_payment"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// PaymentRequest is a manually asserted payment: the user uploads proof, an
// admin approves or rejects it. (auctionID, userID, paymentType) is unique.
type PaymentRequest struct {
	ID          string
	AuctionID   string
	UserID      string
	PaymentType PaymentType

	Amount        decimal.Decimal
	Method        string
	ScreenshotURL string
	TransactionID string
	PaymentDate   time.Time

	VerificationStatus VerificationStatus
	VerifiedBy         string
	VerifiedAt         *time.Time
	AdminNotes         string

	// BiddingEligibleFrom is set at approval time; a user may bid on a
	// reserve auction only once now >= BiddingEligibleFrom.
	BiddingEligibleFrom *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentRepository interface {
	CreatePayment(payment *PaymentRequest) error
	GetPaymentByID(paymentID string) (*PaymentRequest, error)
	// GetPayment returns (nil, nil) when no record exists for the key.
	GetPayment(auctionID, userID string, paymentType PaymentType) (*PaymentRequest, error)
	UpdatePayment(payment *PaymentRequest) error
	// UpgradeToWinnerPayment rewrites the existing participation-fee record
	// for (auctionID, userID) in place as a pending winner payment, in one
	// transaction. Returns (false, nil) when no record exists to upgrade.
	UpgradeToWinnerPayment(auctionID, userID string, payment *PaymentRequest) (bool, error)
}
