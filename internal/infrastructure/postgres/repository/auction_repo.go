package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/mappers"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuctionRepository struct {
	DB *gorm.DB
}

func NewDefaultAuctionRepository(db *gorm.DB) *DefaultAuctionRepository {
	return &DefaultAuctionRepository{DB: db}
}

func (r *DefaultAuctionRepository) CreateAuction(auction *domain.Auction) (string, error) {
	if auction.ID == "" {
		auction.ID = uuid.New().String()
	}
	auctionModel, err := mappers.ToGORMAuction(auction)
	if err != nil {
		return "", err
	}

	if err := r.DB.Create(auctionModel).Error; err != nil {
		return "", err
	}
	return auction.ID, nil
}

func (r *DefaultAuctionRepository) GetAuctionByID(auctionID string) (*domain.Auction, error) {
	var auctionModel models.AuctionModel
	if err := r.DB.First(&auctionModel, "id = ?", auctionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(fmt.Sprintf("auction %s not found", auctionID))
		}
		return nil, err
	}
	return mappers.ToDomainAuction(&auctionModel)
}

// Update writes the auction guarded by its version: the row is touched only
// if the stored version still matches, and the version is bumped in the
// same statement. Zero affected rows means somebody else won the race.
func (r *DefaultAuctionRepository) Update(auction *domain.Auction) error {
	auctionModel, err := mappers.ToGORMAuction(auction)
	if err != nil {
		return err
	}

	result := r.DB.Model(&models.AuctionModel{}).
		Where("id = ? AND version = ?", auction.ID, auction.Version).
		Updates(map[string]interface{}{
			"current_bid":        auctionModel.CurrentBid,
			"highest_bidder_id":  auctionModel.HighestBidderID,
			"bids":               auctionModel.Bids,
			"start_date":         auctionModel.StartDate,
			"end_date":           auctionModel.EndDate,
			"status":             auctionModel.Status,
			"needs_approval":     auctionModel.NeedsApproval,
			"approval_status":    auctionModel.ApprovalStatus,
			"reviewed_by":        auctionModel.ReviewedBy,
			"reviewed_at":        auctionModel.ReviewedAt,
			"admin_notes":        auctionModel.AdminNotes,
			"version":            auction.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVersionConflict
	}

	auction.Version++
	return nil
}

func (r *DefaultAuctionRepository) FindExpiredActive(now time.Time) ([]*domain.Auction, error) {
	// Stored status lags the clock: an auction created before its start
	// date keeps the upcoming row value until something writes it, so the
	// sweep must pick up both schedule-live statuses.
	var auctionModels []models.AuctionModel
	if err := r.DB.
		Where("status IN ?", []string{string(domain.StatusUpcoming), string(domain.StatusActive)}).
		Where("end_date <= ?", now).
		Find(&auctionModels).Error; err != nil {
		return nil, err
	}

	auctions := make([]*domain.Auction, len(auctionModels))
	for i := range auctionModels {
		auction, err := mappers.ToDomainAuction(&auctionModels[i])
		if err != nil {
			return nil, err
		}
		auctions[i] = auction
	}
	return auctions, nil
}

func (r *DefaultAuctionRepository) CodeInUse(auctionCode, participationCode, excludeAuctionID string) (bool, error) {
	query := r.DB.Model(&models.AuctionModel{}).
		Where("auction_code = ? OR participation_code = ?", auctionCode, participationCode)
	if excludeAuctionID != "" {
		query = query.Where("id <> ?", excludeAuctionID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
