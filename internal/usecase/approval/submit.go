package approval

import (
	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/shopspring/decimal"
)

func (uc *DefaultApprovalUsecase) SubmitRequest(input *SubmitRequestInput) (*domain.AuctionRequest, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	if domain.AuctionType(input.Type) != domain.TypeReserve {
		return nil, domain.NewError(domain.KindInvalidArgument, "",
			"only reserve auctions go through the approval queue")
	}

	auctionCode, participationCode, err := uc.freshCodes()
	if err != nil {
		return nil, err
	}

	req := &domain.AuctionRequest{
		ID:                uuid.New().String(),
		AuctionCode:       auctionCode,
		ParticipationCode: participationCode,
		Type:              domain.AuctionType(input.Type),
		Title:             input.Title,
		Description:       input.Description,
		StartingPrice:     input.StartingPrice,
		BidIncrement:      bidIncrementOrDefault(input.BidIncrement),
		MinimumPrice:      input.MinimumPrice,
		ReservePrice:      input.ReservePrice,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		SellerID:          input.SellerID,
		ApprovalStatus:    domain.ApprovalPending,
		SubmittedAt:       uc.Now(),
	}

	if err := uc.requestRepo.CreateRequest(req); err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.RequestsSubmittedTotal.Inc()
	}
	return req, nil
}

// CreateAuction is the direct path for non-reserve types: no staging entity,
// the auction goes live against its schedule immediately.
func (uc *DefaultApprovalUsecase) CreateAuction(input *SubmitRequestInput) (*domain.Auction, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	if domain.AuctionType(input.Type) == domain.TypeReserve {
		return nil, domain.NewError(domain.KindInvalidArgument, "",
			"reserve auctions must be submitted for approval")
	}

	auctionCode, participationCode, err := uc.freshCodes()
	if err != nil {
		return nil, err
	}

	auction := &domain.Auction{
		ID:                uuid.New().String(),
		AuctionCode:       auctionCode,
		ParticipationCode: participationCode,
		Type:              domain.AuctionType(input.Type),
		Title:             input.Title,
		Description:       input.Description,
		StartingPrice:     input.StartingPrice,
		BidIncrement:      bidIncrementOrDefault(input.BidIncrement),
		MinimumPrice:      input.MinimumPrice,
		ReservePrice:      input.ReservePrice,
		CurrentBid:        input.StartingPrice,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		SellerID:          input.SellerID,
		NeedsApproval:     false,
	}
	auction.Status = auction.DeriveStatus(uc.Now())

	if _, err := uc.auctionRepo.CreateAuction(auction); err != nil {
		return nil, err
	}
	return auction, nil
}

func (uc *DefaultApprovalUsecase) validateInput(input *SubmitRequestInput) error {
	if err := uc.validate.Struct(input); err != nil {
		return domain.NewError(domain.KindInvalidArgument, "", err.Error())
	}
	if input.StartingPrice.IsNegative() {
		return domain.NewError(domain.KindInvalidArgument, "", "starting price must not be negative")
	}
	if !input.BidIncrement.IsZero() && input.BidIncrement.LessThan(decimal.NewFromInt(1)) {
		return domain.NewError(domain.KindInvalidArgument, "", "bid increment must be at least 1")
	}
	return nil
}

// freshCodes generates a code pair free of collisions across both the live
// auction table and the pending request table.
func (uc *DefaultApprovalUsecase) freshCodes() (string, string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		auctionCode := "AUC-" + uc.codeGen()
		participationCode := uc.codeGen()

		taken, err := uc.auctionRepo.CodeInUse(auctionCode, participationCode, "")
		if err != nil {
			return "", "", err
		}
		if taken {
			continue
		}
		taken, err = uc.requestRepo.CodeInUse(auctionCode, participationCode, "")
		if err != nil {
			return "", "", err
		}
		if !taken {
			return auctionCode, participationCode, nil
		}
	}
	return "", "", domain.NewError(domain.KindConflict, domain.ReasonCodeTaken,
		"could not generate unique auction codes")
}

func bidIncrementOrDefault(increment decimal.Decimal) decimal.Decimal {
	if increment.IsZero() {
		return decimal.NewFromInt(domain.DefaultBidIncrement)
	}
	return increment
}
