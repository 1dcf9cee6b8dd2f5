package repository

import (
	"errors"
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/mappers"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuctionRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultAuctionRequestRepository(db *gorm.DB) *DefaultAuctionRequestRepository {
	return &DefaultAuctionRequestRepository{DB: db}
}

func (r *DefaultAuctionRequestRepository) CreateRequest(req *domain.AuctionRequest) error {
	return r.DB.Create(mappers.ToGORMRequest(req)).Error
}

func (r *DefaultAuctionRequestRepository) GetRequestByID(requestID string) (*domain.AuctionRequest, error) {
	var requestModel models.AuctionRequestModel
	if err := r.DB.First(&requestModel, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(fmt.Sprintf("auction request %s not found", requestID))
		}
		return nil, err
	}
	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultAuctionRequestRepository) UpdateRequest(req *domain.AuctionRequest) error {
	return r.DB.Save(mappers.ToGORMRequest(req)).Error
}

// PromoteRequest inserts the auction and saves the approved request in one
// transaction, so a request can never end up approved without its auction.
func (r *DefaultAuctionRequestRepository) PromoteRequest(req *domain.AuctionRequest, auction *domain.Auction) error {
	auctionModel, err := mappers.ToGORMAuction(auction)
	if err != nil {
		return err
	}
	requestModel := mappers.ToGORMRequest(req)

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(auctionModel).Error; err != nil {
			return err
		}
		return tx.Save(requestModel).Error
	})
}

func (r *DefaultAuctionRequestRepository) CodeInUse(auctionCode, participationCode, excludeRequestID string) (bool, error) {
	query := r.DB.Model(&models.AuctionRequestModel{}).
		Where("approval_status = ?", string(domain.ApprovalPending)).
		Where("auction_code = ? OR participation_code = ?", auctionCode, participationCode)
	if excludeRequestID != "" {
		query = query.Where("id <> ?", excludeRequestID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
