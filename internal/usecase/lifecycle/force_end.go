package lifecycle

import (
	"context"
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
)

func (uc *DefaultLifecycleUsecase) ForceEnd(ctx context.Context, auctionID, callerID string) (*domain.Auction, error) {
	auction, err := uc.auctionRepo.GetAuctionByID(auctionID)
	if err != nil {
		return nil, err
	}
	if auction.SellerID != callerID {
		return nil, domain.NewError(domain.KindForbidden, domain.ReasonNotSeller,
			"only the seller may end this auction")
	}

	now := uc.Now()
	if status := auction.DeriveStatus(now); status != domain.StatusActive {
		return nil, domain.NewError(domain.KindInvalidState, domain.ReasonNotActive,
			fmt.Sprintf("auction is %s, only an active auction can be ended", status))
	}

	auction.EndDate = now
	if err := uc.completeAuction(auction); err != nil {
		return nil, err
	}

	return uc.auctionRepo.GetAuctionByID(auctionID)
}

// CancelAuction lets a seller withdraw an auction that has not ended yet.
func (uc *DefaultLifecycleUsecase) CancelAuction(auctionID, callerID string) (*domain.Auction, error) {
	auction, err := uc.auctionRepo.GetAuctionByID(auctionID)
	if err != nil {
		return nil, err
	}
	if auction.SellerID != callerID {
		return nil, domain.NewError(domain.KindForbidden, domain.ReasonNotSeller,
			"only the seller may cancel this auction")
	}

	status := auction.DeriveStatus(uc.Now())
	if status != domain.StatusUpcoming && status != domain.StatusActive {
		return nil, domain.NewError(domain.KindInvalidState, "",
			fmt.Sprintf("auction is %s and can no longer be cancelled", status))
	}

	auction.Status = domain.StatusCancelled
	if err := uc.auctionRepo.Update(auction); err != nil {
		return nil, err
	}
	return auction, nil
}

// DeleteAuction soft-deletes: the record stays referenced by bids, payments
// and winner rows, only its status becomes deleted, which is sticky.
func (uc *DefaultLifecycleUsecase) DeleteAuction(auctionID, adminID string) (*domain.Auction, error) {
	admin, err := uc.users.GetUserByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.RoleAdmin {
		return nil, domain.NewError(domain.KindForbidden, "", "only admins may delete auctions")
	}

	auction, err := uc.auctionRepo.GetAuctionByID(auctionID)
	if err != nil {
		return nil, err
	}
	auction.Status = domain.StatusDeleted
	if err := uc.auctionRepo.Update(auction); err != nil {
		return nil, err
	}
	return auction, nil
}
