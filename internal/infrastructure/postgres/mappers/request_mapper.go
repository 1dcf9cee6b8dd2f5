package mappers

import (
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
)

func ToDomainRequest(model *models.AuctionRequestModel) *domain.AuctionRequest {
	return &domain.AuctionRequest{
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
		StartDate:         model.StartDate,
		EndDate:           model.EndDate,
		SellerID:          model.SellerID,
		ApprovalStatus:    domain.ApprovalStatus(model.ApprovalStatus),
		SubmittedAt:       model.SubmittedAt,
		ReviewedBy:        model.ReviewedBy,
		ReviewedAt:        model.ReviewedAt,
		AdminNotes:        model.AdminNotes,
		CreatedAuctionID:  model.CreatedAuctionID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMRequest(req *domain.AuctionRequest) *models.AuctionRequestModel {
	return &models.AuctionRequestModel{
		ID:                req.ID,
		AuctionCode:       req.AuctionCode,
		ParticipationCode: req.ParticipationCode,
		Type:              string(req.Type),
		Title:             req.Title,
		Description:       req.Description,
		StartingPrice:     req.StartingPrice,
		BidIncrement:      req.BidIncrement,
		MinimumPrice:      req.MinimumPrice,
		ReservePrice:      req.ReservePrice,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		SellerID:          req.SellerID,
		ApprovalStatus:    string(req.ApprovalStatus),
		SubmittedAt:       req.SubmittedAt,
		ReviewedBy:        req.ReviewedBy,
		ReviewedAt:        req.ReviewedAt,
		AdminNotes:        req.AdminNotes,
		CreatedAuctionID:  req.CreatedAuctionID,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}
