package settlement

import (
	"fmt"
	"log/slog"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/shopspring/decimal"
)

// AmountDueForAuction resolves the auction and its winner record and applies
// the pure calculation. Used both to present payment instructions and to
// validate a submitted winner payment.
func (uc *DefaultSettlementUsecase) AmountDueForAuction(auctionID string) (decimal.Decimal, error) {
	auction, err := uc.auctionRepo.GetAuctionByID(auctionID)
	if err != nil {
		return decimal.Zero, err
	}
	winner, err := uc.winnerRepo.GetWinnerByAuctionID(auctionID)
	if err != nil {
		return decimal.Zero, err
	}
	return AmountDue(auction, winner)
}

func (uc *DefaultSettlementUsecase) SubmitParticipationPayment(input *SubmitPaymentInput) (*domain.PaymentRequest, error) {
	auction, err := uc.auctionRepo.GetAuctionByID(input.AuctionID)
	if err != nil {
		return nil, err
	}
	if auction.Type != domain.TypeReserve {
		return nil, domain.NewError(domain.KindInvalidState, "",
			fmt.Sprintf("auction %s does not require a participation fee", auction.ID))
	}
	if auction.SellerID == input.UserID {
		return nil, domain.NewError(domain.KindInvalidArgument, domain.ReasonSelfBid,
			"seller cannot pay to join their own auction")
	}

	existing, err := uc.paymentRepo.GetPayment(input.AuctionID, input.UserID, domain.PaymentParticipationFee)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.VerificationStatus != domain.VerificationRejected {
		return nil, domain.NewError(domain.KindConflict, "",
			fmt.Sprintf("participation payment already submitted, status: %s", existing.VerificationStatus))
	}

	now := uc.Now()
	if existing != nil {
		// Rejected proof may be resubmitted: the record goes back to
		// pending with the new evidence.
		existing.Amount = input.Amount
		existing.Method = input.Method
		existing.ScreenshotURL = input.ScreenshotURL
		existing.TransactionID = input.TransactionID
		existing.PaymentDate = now
		existing.VerificationStatus = domain.VerificationPending
		existing.VerifiedBy = ""
		existing.VerifiedAt = nil
		existing.AdminNotes = ""
		existing.BiddingEligibleFrom = nil
		if err := uc.paymentRepo.UpdatePayment(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	payment := &domain.PaymentRequest{
		ID:                 newPaymentID(),
		AuctionID:          input.AuctionID,
		UserID:             input.UserID,
		PaymentType:        domain.PaymentParticipationFee,
		Amount:             input.Amount,
		Method:             input.Method,
		ScreenshotURL:      input.ScreenshotURL,
		TransactionID:      input.TransactionID,
		PaymentDate:        now,
		VerificationStatus: domain.VerificationPending,
	}
	if err := uc.paymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// SubmitWinnerPayment records the settlement payment of an auction winner.
// When a participation-fee record already exists for (auction, user) it is
// upgraded in place instead of inserting a second row: the unique index is
// on (auction, user, type), but the business expectation is one commercial
// relationship per winner per auction.
func (uc *DefaultSettlementUsecase) SubmitWinnerPayment(input *SubmitPaymentInput) (*domain.PaymentRequest, error) {
	winner, err := uc.winnerRepo.GetWinnerByAuctionID(input.AuctionID)
	if err != nil {
		return nil, err
	}
	if winner.UserID != input.UserID {
		return nil, domain.NewError(domain.KindForbidden, domain.ReasonNotWinner,
			"only the recorded winner may submit the settlement payment")
	}

	auction, err := uc.auctionRepo.GetAuctionByID(input.AuctionID)
	if err != nil {
		return nil, err
	}
	due, err := AmountDue(auction, winner)
	if err != nil {
		return nil, err
	}
	if !input.Amount.Equal(due) {
		return nil, domain.NewError(domain.KindInvalidArgument, domain.ReasonAmountMismatch,
			fmt.Sprintf("expected payment of %s, got %s", due, input.Amount))
	}

	existing, err := uc.paymentRepo.GetPayment(input.AuctionID, input.UserID, domain.PaymentWinnerSettlement)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.VerificationStatus != domain.VerificationRejected {
		return nil, domain.NewError(domain.KindConflict, "",
			fmt.Sprintf("winner payment already submitted, status: %s", existing.VerificationStatus))
	}
	if existing != nil {
		// Rejected settlement proof may be resubmitted: the participation
		// row was already consumed by the first upgrade, so the winner
		// record itself goes back to pending with the new evidence.
		existing.Amount = input.Amount
		existing.Method = input.Method
		existing.ScreenshotURL = input.ScreenshotURL
		existing.TransactionID = input.TransactionID
		existing.PaymentDate = uc.Now()
		existing.VerificationStatus = domain.VerificationPending
		existing.VerifiedBy = ""
		existing.VerifiedAt = nil
		existing.AdminNotes = ""
		if err := uc.paymentRepo.UpdatePayment(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	payment := &domain.PaymentRequest{
		ID:                 newPaymentID(),
		AuctionID:          input.AuctionID,
		UserID:             input.UserID,
		PaymentType:        domain.PaymentWinnerSettlement,
		Amount:             input.Amount,
		Method:             input.Method,
		ScreenshotURL:      input.ScreenshotURL,
		TransactionID:      input.TransactionID,
		PaymentDate:        uc.Now(),
		VerificationStatus: domain.VerificationPending,
	}

	upgraded, err := uc.paymentRepo.UpgradeToWinnerPayment(input.AuctionID, input.UserID, payment)
	if err != nil {
		return nil, err
	}
	if !upgraded {
		if err := uc.paymentRepo.CreatePayment(payment); err != nil {
			return nil, err
		}
	}

	result, err := uc.paymentRepo.GetPayment(input.AuctionID, input.UserID, domain.PaymentWinnerSettlement)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *DefaultSettlementUsecase) ApprovePayment(input *ReviewPaymentInput) (*domain.PaymentRequest, error) {
	payment, err := uc.paymentRepo.GetPaymentByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	switch payment.VerificationStatus {
	case domain.VerificationApproved:
		// Intended end-state already reached.
		return payment, nil
	case domain.VerificationRejected:
		return nil, domain.NewError(domain.KindConflict, domain.ReasonAlreadyRejected,
			fmt.Sprintf("payment already rejected: %s", payment.AdminNotes))
	}

	now := uc.Now()
	payment.VerificationStatus = domain.VerificationApproved
	payment.VerifiedBy = input.AdminID
	payment.VerifiedAt = &now
	payment.AdminNotes = input.Notes
	if payment.PaymentType == domain.PaymentParticipationFee {
		payment.BiddingEligibleFrom = &now
	}

	if err := uc.paymentRepo.UpdatePayment(payment); err != nil {
		return nil, err
	}

	uc.publishReview(payment)
	if uc.metrics != nil {
		uc.metrics.PaymentsReviewedTotal.WithLabelValues(string(payment.PaymentType), "approved").Inc()
	}
	return payment, nil
}

func (uc *DefaultSettlementUsecase) RejectPayment(input *ReviewPaymentInput) (*domain.PaymentRequest, error) {
	if input.Notes == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, domain.ReasonNotesRequired,
			"rejection requires admin notes")
	}

	payment, err := uc.paymentRepo.GetPaymentByID(input.PaymentID)
	if err != nil {
		return nil, err
	}
	switch payment.VerificationStatus {
	case domain.VerificationRejected:
		return payment, nil
	case domain.VerificationApproved:
		return nil, domain.NewError(domain.KindConflict, domain.ReasonAlreadyApproved,
			"payment already approved")
	}

	now := uc.Now()
	payment.VerificationStatus = domain.VerificationRejected
	payment.VerifiedBy = input.AdminID
	payment.VerifiedAt = &now
	payment.AdminNotes = input.Notes
	payment.BiddingEligibleFrom = nil

	if err := uc.paymentRepo.UpdatePayment(payment); err != nil {
		return nil, err
	}

	uc.publishReview(payment)
	if uc.metrics != nil {
		uc.metrics.PaymentsReviewedTotal.WithLabelValues(string(payment.PaymentType), "rejected").Inc()
	}
	return payment, nil
}

func (uc *DefaultSettlementUsecase) publishReview(payment *domain.PaymentRequest) {
	if uc.publisher == nil {
		return
	}
	go func(event domain.PaymentEvent) {
		if err := uc.publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish payment event", "payment_id", event.PaymentID, "error", err.Error())
		}
	}(domain.PaymentEvent{
		PaymentID:   payment.ID,
		AuctionID:   payment.AuctionID,
		UserID:      payment.UserID,
		PaymentType: string(payment.PaymentType),
		Status:      string(payment.VerificationStatus),
		AdminNotes:  payment.AdminNotes,
	})
}
