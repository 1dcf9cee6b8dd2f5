package mappers

import (
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentRequestModel) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:                  model.ID,
		AuctionID:           model.AuctionID,
		UserID:              model.UserID,
		PaymentType:         domain.PaymentType(model.PaymentType),
		Amount:              model.Amount,
		Method:              model.Method,
		ScreenshotURL:       model.ScreenshotURL,
		TransactionID:       model.TransactionID,
		PaymentDate:         model.PaymentDate,
		VerificationStatus:  domain.VerificationStatus(model.VerificationStatus),
		VerifiedBy:          model.VerifiedBy,
		VerifiedAt:          model.VerifiedAt,
		AdminNotes:          model.AdminNotes,
		BiddingEligibleFrom: model.BiddingEligibleFrom,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.PaymentRequest) *models.PaymentRequestModel {
	return &models.PaymentRequestModel{
		ID:                  payment.ID,
		AuctionID:           payment.AuctionID,
		UserID:              payment.UserID,
		PaymentType:         string(payment.PaymentType),
		Amount:              payment.Amount,
		Method:              payment.Method,
		ScreenshotURL:       payment.ScreenshotURL,
		TransactionID:       payment.TransactionID,
		PaymentDate:         payment.PaymentDate,
		VerificationStatus:  string(payment.VerificationStatus),
		VerifiedBy:          payment.VerifiedBy,
		VerifiedAt:          payment.VerifiedAt,
		AdminNotes:          payment.AdminNotes,
		BiddingEligibleFrom: payment.BiddingEligibleFrom,
		CreatedAt:           payment.CreatedAt,
		UpdatedAt:           payment.UpdatedAt,
	}
}

func ToDomainWinner(model *models.WinnerModel) *domain.Winner {
	return &domain.Winner{
		ID:        model.ID,
		AuctionID: model.AuctionID,
		UserID:    model.UserID,
		FullName:  model.FullName,
		Email:     model.Email,
		Phone:     model.Phone,
		Amount:    model.Amount,
		Notified:  model.Notified,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMWinner(winner *domain.Winner) *models.WinnerModel {
	return &models.WinnerModel{
		ID:        winner.ID,
		AuctionID: winner.AuctionID,
		UserID:    winner.UserID,
		FullName:  winner.FullName,
		Email:     winner.Email,
		Phone:     winner.Phone,
		Amount:    winner.Amount,
		Notified:  winner.Notified,
		CreatedAt: winner.CreatedAt,
	}
}
