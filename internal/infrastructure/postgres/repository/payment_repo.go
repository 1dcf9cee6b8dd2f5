package repository

import (
	"errors"
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/mappers"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.PaymentRequest) error {
	return r.DB.Create(mappers.ToGORMPayment(payment)).Error
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.PaymentRequest, error) {
	var paymentModel models.PaymentRequestModel
	if err := r.DB.First(&paymentModel, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(fmt.Sprintf("payment %s not found", paymentID))
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) GetPayment(auctionID, userID string, paymentType domain.PaymentType) (*domain.PaymentRequest, error) {
	var paymentModel models.PaymentRequestModel
	err := r.DB.
		Where("auction_id = ? AND user_id = ? AND payment_type = ?", auctionID, userID, string(paymentType)).
		First(&paymentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) UpdatePayment(payment *domain.PaymentRequest) error {
	return r.DB.Save(mappers.ToGORMPayment(payment)).Error
}

// UpgradeToWinnerPayment switches the participation-fee row of
// (auctionID, userID) to a pending winner payment, overwriting its
// evidence. The row is locked for the duration so a concurrent admin
// decision cannot interleave.
func (r *DefaultPaymentRepository) UpgradeToWinnerPayment(auctionID, userID string, payment *domain.PaymentRequest) (bool, error) {
	upgraded := false

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.PaymentRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("auction_id = ? AND user_id = ? AND payment_type = ?",
				auctionID, userID, string(domain.PaymentParticipationFee)).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		updates := map[string]interface{}{
			"payment_type":          string(domain.PaymentWinnerSettlement),
			"amount":                payment.Amount,
			"method":                payment.Method,
			"screenshot_url":        payment.ScreenshotURL,
			"transaction_id":        payment.TransactionID,
			"payment_date":          payment.PaymentDate,
			"verification_status":   string(domain.VerificationPending),
			"verified_by":           "",
			"verified_at":           nil,
			"admin_notes":           "",
			"bidding_eligible_from": nil,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		upgraded = true
		return nil
	})

	return upgraded, err
}
