package bidding

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
)

// maxPlaceBidRetries bounds the optimistic-concurrency retry loop. A retry
// re-reads the auction and re-runs every precondition against fresh state.
const maxPlaceBidRetries = 3

// PlaceBid validates and applies a bid. Preconditions run in a fixed order
// and the first failure wins; the ledger append and the derived-field
// recompute are persisted in one versioned write.
func (uc *DefaultBiddingUsecase) PlaceBid(input *PlaceBidInput) (*PlaceBidOutput, error) {
	user, err := uc.users.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Suspended {
		return nil, uc.rejected(domain.NewError(domain.KindForbidden, domain.ReasonSuspended,
			"account is suspended from bidding"))
	}

	var lastErr error
	for attempt := 0; attempt < maxPlaceBidRetries; attempt++ {
		auction, err := uc.auctionRepo.GetAuctionByID(input.AuctionID)
		if err != nil {
			return nil, err
		}

		now := uc.Now()
		if status := auction.DeriveStatus(now); status != domain.StatusActive {
			return nil, uc.rejected(domain.NewError(domain.KindInvalidState, domain.ReasonNotActive,
				fmt.Sprintf("auction is %s, bids are only accepted while active", status)))
		}

		if auction.Type == domain.TypeReserve {
			if err := uc.checkParticipation(auction, input.UserID); err != nil {
				return nil, uc.rejected(err)
			}
		}

		if auction.SellerID == input.UserID {
			return nil, uc.rejected(domain.NewError(domain.KindInvalidArgument, domain.ReasonSelfBid,
				"sellers cannot bid on their own auction"))
		}
		if !input.Amount.GreaterThan(auction.CurrentBid) {
			return nil, uc.rejected(domain.NewError(domain.KindInvalidArgument, domain.ReasonBelowCurrent,
				fmt.Sprintf("bid must exceed current bid of %s", auction.CurrentBid)))
		}
		if input.Amount.LessThan(auction.CurrentBid.Add(auction.BidIncrement)) {
			return nil, uc.rejected(domain.NewError(domain.KindInvalidArgument, domain.ReasonBelowIncrement,
				fmt.Sprintf("bid must be at least %s", auction.CurrentBid.Add(auction.BidIncrement))))
		}

		bid := auction.ApplyBid(input.UserID, input.Amount, now)

		if err := uc.auctionRepo.Update(auction); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}

		uc.recordBidSideEffects(auction, bid)
		return &PlaceBidOutput{Auction: auction, Bid: bid}, nil
	}

	return nil, fmt.Errorf("place bid: retries exhausted: %w", lastErr)
}

// rejected counts a refused bid under its machine reason before handing the
// error up.
func (uc *DefaultBiddingUsecase) rejected(err error) error {
	if uc.metrics != nil {
		if reason := domain.ReasonOf(err); reason != "" {
			uc.metrics.BidRejectedTotal.WithLabelValues(reason).Inc()
		}
	}
	return err
}

// checkParticipation gates reserve auctions behind an admin-approved
// participation fee. The exact sub-reason is surfaced so the caller can tell
// "pay first" from "still under review" from "rejected".
func (uc *DefaultBiddingUsecase) checkParticipation(auction *domain.Auction, userID string) error {
	payment, err := uc.paymentRepo.GetPayment(auction.ID, userID, domain.PaymentParticipationFee)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.NewError(domain.KindForbidden, domain.ReasonPaymentRequired,
			"participation fee must be paid before bidding on this auction")
	}
	switch payment.VerificationStatus {
	case domain.VerificationRejected:
		return domain.NewError(domain.KindForbidden, domain.ReasonPaymentRejected,
			fmt.Sprintf("participation fee was rejected: %s", payment.AdminNotes))
	case domain.VerificationApproved:
		if payment.BiddingEligibleFrom != nil && !uc.Now().Before(*payment.BiddingEligibleFrom) {
			return nil
		}
		return domain.NewError(domain.KindForbidden, domain.ReasonPaymentPending,
			"participation fee approved but bidding eligibility not yet effective")
	default:
		return domain.NewError(domain.KindForbidden, domain.ReasonPaymentPending,
			"participation fee is awaiting admin verification")
	}
}

// recordBidSideEffects writes the display-only audit ledgers, the metrics
// and the bid event. All best-effort: failures are logged, the accepted bid
// stands.
func (uc *DefaultBiddingUsecase) recordBidSideEffects(auction *domain.Auction, bid domain.Bid) {
	entry := &domain.BidHistoryEntry{
		ID:          uuid.New().String(),
		AuctionID:   auction.ID,
		AuctionCode: auction.AuctionCode,
		BidderID:    bid.BidderID,
		SellerID:    auction.SellerID,
		Amount:      bid.Amount,
		PlacedAt:    bid.Timestamp,
	}
	if uc.historyRepo != nil {
		if err := uc.historyRepo.LogUserBid(entry); err != nil {
			slog.Error("failed to log user bid history", "auction_id", auction.ID, "error", err.Error())
		}
		if err := uc.historyRepo.LogSellerBid(entry); err != nil {
			slog.Error("failed to log seller bid history", "auction_id", auction.ID, "error", err.Error())
		}
	}

	if uc.metrics != nil {
		uc.metrics.BidsPlacedTotal.WithLabelValues(string(auction.Type)).Inc()
		amount, _ := bid.Amount.Float64()
		uc.metrics.BidAmountTotal.WithLabelValues(string(auction.Type)).Add(amount)
	}

	if uc.publisher != nil {
		go func(event domain.BidEvent) {
			if err := uc.publisher.PublishBid(event); err != nil {
				slog.Error("failed to publish bid event", "auction_id", event.AuctionID, "error", err.Error())
			}
		}(domain.BidEvent{
			AuctionID:   auction.ID,
			AuctionCode: auction.AuctionCode,
			BidderID:    bid.BidderID,
			SellerID:    auction.SellerID,
			Amount:      bid.Amount,
			PlacedAt:    bid.Timestamp,
		})
	}
}
