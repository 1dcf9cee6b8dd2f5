package mappers

import (
	"encoding/json"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
)

func ToDomainAuction(model *models.AuctionModel) (*domain.Auction, error) {
	var bids []domain.Bid
	if model.Bids != "" {
		if err := json.Unmarshal([]byte(model.Bids), &bids); err != nil {
			return nil, err
		}
	}

	return &domain.Auction{
		ID:                model.ID,
		AuctionCode:       model.AuctionCode,
		ParticipationCode: model.ParticipationCode,
		Type:              domain.AuctionType(model.Type),
		Title:             model.Title,
		Description:       model.Description,
		StartingPrice:     model.StartingPrice,
		BidIncrement:      model.BidIncrement,
		MinimumPrice:      model.MinimumPrice,
		ReservePrice:      model.ReservePrice,
		CurrentBid:        model.CurrentBid,
		HighestBidderID:   model.HighestBidderID,
		Bids:              bids,
		StartDate:         model.StartDate,
		EndDate:           model.EndDate,
		Status:            domain.AuctionStatus(model.Status),
		SellerID:          model.SellerID,
		NeedsApproval:     model.NeedsApproval,
		ApprovalStatus:    domain.ApprovalStatus(model.ApprovalStatus),
		ReviewedBy:        model.ReviewedBy,
		ReviewedAt:        model.ReviewedAt,
		AdminNotes:        model.AdminNotes,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}, nil
}

func ToGORMAuction(auction *domain.Auction) (*models.AuctionModel, error) {
	bids, err := json.Marshal(auction.Bids)
	if err != nil {
		return nil, err
	}

	return &models.AuctionModel{
		ID:                auction.ID,
		AuctionCode:       auction.AuctionCode,
		ParticipationCode: auction.ParticipationCode,
		Type:              string(auction.Type),
		Title:             auction.Title,
		Description:       auction.Description,
		StartingPrice:     auction.StartingPrice,
		BidIncrement:      auction.BidIncrement,
		MinimumPrice:      auction.MinimumPrice,
		ReservePrice:      auction.ReservePrice,
		CurrentBid:        auction.CurrentBid,
		HighestBidderID:   auction.HighestBidderID,
		Bids:              string(bids),
		StartDate:         auction.StartDate,
		EndDate:           auction.EndDate,
		Status:            string(auction.Status),
		SellerID:          auction.SellerID,
		NeedsApproval:     auction.NeedsApproval,
		ApprovalStatus:    string(auction.ApprovalStatus),
		ReviewedBy:        auction.ReviewedBy,
		ReviewedAt:        auction.ReviewedAt,
		AdminNotes:        auction.AdminNotes,
		Version:           auction.Version,
		CreatedAt:         auction.CreatedAt,
		UpdatedAt:         auction.UpdatedAt,
	}, nil
}
