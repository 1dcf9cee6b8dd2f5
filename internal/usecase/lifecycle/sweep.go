package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const maxCompleteRetries = 3

func (uc *DefaultLifecycleUsecase) SweepOnce(ctx context.Context) error {
	if uc.metrics != nil {
		timer := prometheus.NewTimer(uc.metrics.SweepDuration)
		defer timer.ObserveDuration()
	}

	now := uc.Now()
	auctions, err := uc.auctionRepo.FindExpiredActive(now)
	if err != nil {
		return fmt.Errorf("lifecycle sweep: %w", err)
	}

	for _, auction := range auctions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := uc.completeAuction(auction); err != nil {
			slog.Error("failed to complete auction", "auction_id", auction.ID, "error", err.Error())
			continue
		}
		slog.Info("auction ended", "auction_id", auction.ID, "auction_code", auction.AuctionCode,
			"winner", auction.HighestBidderID)
	}

	return nil
}

// completeAuction is the single per-auction completion path used by both the
// periodic sweep and seller force-end. It transitions the auction to ended
// with a versioned write, then records the winner with a conditional insert.
// The winner step is idempotent: a sweep that re-observes an auction it
// already processed ends up a no-op.
func (uc *DefaultLifecycleUsecase) completeAuction(auction *domain.Auction) error {
	now := uc.Now()

	for attempt := 0; ; attempt++ {
		status := auction.DeriveStatus(now)
		if status == domain.StatusDeleted || status == domain.StatusPending {
			// Sticky, an automatic transition never overwrites these.
			return nil
		}
		if status != domain.StatusEnded {
			// Force-end path: pull the schedule in so the derivation agrees.
			auction.EndDate = now
		}
		auction.Status = domain.StatusEnded

		err := uc.auctionRepo.Update(auction)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt >= maxCompleteRetries {
			return err
		}
		fresh, err := uc.auctionRepo.GetAuctionByID(auction.ID)
		if err != nil {
			return err
		}
		auction = fresh
	}

	if uc.metrics != nil {
		uc.metrics.AuctionsEndedTotal.WithLabelValues(string(auction.Type)).Inc()
	}

	if auction.HighestBidderID == "" {
		return nil
	}

	bidder, err := uc.users.GetUserByID(auction.HighestBidderID)
	if err != nil {
		return fmt.Errorf("resolve winner %s: %w", auction.HighestBidderID, err)
	}

	winner := &domain.Winner{
		ID:        uuid.New().String(),
		AuctionID: auction.ID,
		UserID:    bidder.ID,
		FullName:  bidder.FullName,
		Email:     bidder.Email,
		Phone:     bidder.Phone,
		Amount:    auction.CurrentBid,
		Notified:  false,
	}

	if err := uc.winnerRepo.CreateIfAbsent(winner); err != nil {
		if errors.Is(err, domain.ErrWinnerExists) {
			// Already settled by an earlier pass, nothing to redo.
			return nil
		}
		return err
	}

	uc.notifyWinner(auction, winner)
	return nil
}

// notifyWinner is at-most-once effort. A publish failure neither rolls back
// the winner record nor re-queues the auction.
func (uc *DefaultLifecycleUsecase) notifyWinner(auction *domain.Auction, winner *domain.Winner) {
	if uc.publisher == nil {
		return
	}
	event := domain.WinnerEvent{
		AuctionID:   auction.ID,
		AuctionCode: auction.AuctionCode,
		UserID:      winner.UserID,
		FullName:    winner.FullName,
		Email:       winner.Email,
		Phone:       winner.Phone,
		Amount:      winner.Amount,
		EndedAt:     auction.EndDate,
	}
	if err := uc.publisher.PublishWinner(event); err != nil {
		slog.Error("failed to publish winner event", "auction_id", auction.ID, "error", err.Error())
		return
	}
	if err := uc.winnerRepo.MarkNotified(winner.ID); err != nil {
		slog.Error("failed to mark winner notified", "winner_id", winner.ID, "error", err.Error())
	}
}
