package inmem

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
)

type paymentKey struct {
	AuctionID   string
	UserID      string
	PaymentType domain.PaymentType
}

type PaymentRepository struct {
	mu       sync.Mutex
	payments map[paymentKey]*domain.PaymentRequest
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[paymentKey]*domain.PaymentRequest)}
}

func (r *PaymentRepository) CreatePayment(payment *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	key := paymentKey{payment.AuctionID, payment.UserID, payment.PaymentType}
	if _, ok := r.payments[key]; ok {
		return domain.NewError(domain.KindConflict, "", "payment request already exists")
	}
	clone := *payment
	r.payments[key] = &clone
	return nil
}

func (r *PaymentRepository) GetPaymentByID(paymentID string) (*domain.PaymentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, payment := range r.payments {
		if payment.ID == paymentID {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, domain.NotFoundError(fmt.Sprintf("payment %s not found", paymentID))
}

func (r *PaymentRepository) GetPayment(auctionID, userID string, paymentType domain.PaymentType) (*domain.PaymentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentKey{auctionID, userID, paymentType}]
	if !ok {
		return nil, nil
	}
	clone := *payment
	return &clone, nil
}

func (r *PaymentRepository) UpdatePayment(payment *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := paymentKey{payment.AuctionID, payment.UserID, payment.PaymentType}
	if _, ok := r.payments[key]; !ok {
		return domain.NotFoundError(fmt.Sprintf("payment %s not found", payment.ID))
	}
	clone := *payment
	r.payments[key] = &clone
	return nil
}

func (r *PaymentRepository) UpgradeToWinnerPayment(auctionID, userID string, payment *domain.PaymentRequest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldKey := paymentKey{auctionID, userID, domain.PaymentParticipationFee}
	existing, ok := r.payments[oldKey]
	if !ok {
		return false, nil
	}

	upgraded := *existing
	upgraded.PaymentType = domain.PaymentWinnerSettlement
	upgraded.Amount = payment.Amount
	upgraded.Method = payment.Method
	upgraded.ScreenshotURL = payment.ScreenshotURL
	upgraded.TransactionID = payment.TransactionID
	upgraded.PaymentDate = payment.PaymentDate
	upgraded.VerificationStatus = domain.VerificationPending
	upgraded.VerifiedBy = ""
	upgraded.VerifiedAt = nil
	upgraded.AdminNotes = ""
	upgraded.BiddingEligibleFrom = nil

	delete(r.payments, oldKey)
	r.payments[paymentKey{auctionID, userID, domain.PaymentWinnerSettlement}] = &upgraded
	return true, nil
}

// Count reports how many payment rows exist for (auctionID, userID), any
// type. Test helper for the upgrade-not-duplicate property.
func (r *PaymentRepository) Count(auctionID, userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key := range r.payments {
		if key.AuctionID == auctionID && key.UserID == userID {
			n++
		}
	}
	return n
}
