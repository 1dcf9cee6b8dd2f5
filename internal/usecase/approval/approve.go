package approval

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
)

// Approve promotes a pending request into a live auction.
//
// Already-processed requests are reported with their terminal status so the
// caller can tell "already approved" from "already rejected". A replay of an
// approval whose auction already exists is a no-op success, not a conflict.
func (uc *DefaultApprovalUsecase) Approve(input *ReviewRequestInput) (*domain.Auction, error) {
	if err := uc.requireAdmin(input.AdminID); err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.GetRequestByID(input.RequestID)
	if err != nil {
		return nil, err
	}

	switch req.ApprovalStatus {
	case domain.ApprovalApproved:
		return nil, domain.NewError(domain.KindConflict, domain.ReasonAlreadyApproved,
			fmt.Sprintf("request already approved, auction %s", req.CreatedAuctionID))
	case domain.ApprovalRejected:
		return nil, domain.NewError(domain.KindConflict, domain.ReasonAlreadyRejected,
			fmt.Sprintf("request already rejected: %s", req.AdminNotes))
	}

	if err := uc.validateRequestComplete(req); err != nil {
		return nil, err
	}

	// Replay after a partial earlier attempt: the auction this request
	// created is not a code conflict with itself.
	taken, err := uc.auctionRepo.CodeInUse(req.AuctionCode, req.ParticipationCode, req.CreatedAuctionID)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = uc.requestRepo.CodeInUse(req.AuctionCode, req.ParticipationCode, req.ID)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, domain.NewError(domain.KindConflict, domain.ReasonCodeTaken,
			fmt.Sprintf("auction code %s or participation code already in use", req.AuctionCode))
	}

	if req.CreatedAuctionID != "" {
		if existing, err := uc.auctionRepo.GetAuctionByID(req.CreatedAuctionID); err == nil {
			// An earlier attempt already created the auction; finish the
			// interrupted promotion instead of conflicting with ourselves.
			now := uc.Now()
			req.ApprovalStatus = domain.ApprovalApproved
			req.ReviewedBy = input.AdminID
			req.ReviewedAt = &now
			if err := uc.requestRepo.UpdateRequest(req); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	now := uc.Now()
	auction := &domain.Auction{
		ID:                uuid.New().String(),
		AuctionCode:       req.AuctionCode,
		ParticipationCode: req.ParticipationCode,
		Type:              req.Type,
		Title:             req.Title,
		Description:       req.Description,
		StartingPrice:     req.StartingPrice,
		BidIncrement:      req.BidIncrement,
		MinimumPrice:      req.MinimumPrice,
		ReservePrice:      req.ReservePrice,
		CurrentBid:        req.StartingPrice,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		SellerID:          req.SellerID,
		NeedsApproval:     false,
		ApprovalStatus:    domain.ApprovalApproved,
	}
	auction.Status = auction.DeriveStatus(now)

	req.ApprovalStatus = domain.ApprovalApproved
	req.ReviewedBy = input.AdminID
	req.ReviewedAt = &now
	req.AdminNotes = input.Notes
	req.CreatedAuctionID = auction.ID

	if err := uc.requestRepo.PromoteRequest(req, auction); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RequestsReviewedTotal.WithLabelValues("approved").Inc()
	}
	return auction, nil
}

func (uc *DefaultApprovalUsecase) validateRequestComplete(req *domain.AuctionRequest) error {
	switch {
	case req.AuctionCode == "", req.ParticipationCode == "":
		return domain.NewError(domain.KindInvalidArgument, "", "request is missing auction codes")
	case req.Title == "", req.SellerID == "":
		return domain.NewError(domain.KindInvalidArgument, "", "request is missing title or seller")
	case req.StartDate.IsZero(), req.EndDate.IsZero(), !req.EndDate.After(req.StartDate):
		return domain.NewError(domain.KindInvalidArgument, "", "request has an invalid schedule")
	case req.StartingPrice.IsNegative():
		return domain.NewError(domain.KindInvalidArgument, "", "request has a negative starting price")
	}
	return nil
}
