package approval

import (
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
)

func (uc *DefaultApprovalUsecase) Reject(input *ReviewRequestInput) (*domain.AuctionRequest, error) {
	if err := uc.requireAdmin(input.AdminID); err != nil {
		return nil, err
	}
	if input.Notes == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, domain.ReasonNotesRequired,
			"rejection requires admin notes")
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

	now := uc.Now()
	req.ApprovalStatus = domain.ApprovalRejected
	req.ReviewedBy = input.AdminID
	req.ReviewedAt = &now
	req.AdminNotes = input.Notes

	if err := uc.requestRepo.UpdateRequest(req); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RequestsReviewedTotal.WithLabelValues("rejected").Inc()
	}
	return req, nil
}
