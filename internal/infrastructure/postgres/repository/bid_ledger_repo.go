package repository

import (
	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultBidLedgerRepository persists the two display-only bid ledgers.
type DefaultBidLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultBidLedgerRepository(db *gorm.DB) *DefaultBidLedgerRepository {
	return &DefaultBidLedgerRepository{DB: db}
}

func (r *DefaultBidLedgerRepository) LogUserBid(entry *domain.BidHistoryEntry) error {
	return r.DB.Create(&models.UserBidEntryModel{
		ID:          entry.ID,
		BidderID:    entry.BidderID,
		AuctionID:   entry.AuctionID,
		AuctionCode: entry.AuctionCode,
		SellerID:    entry.SellerID,
		Amount:      entry.Amount,
		PlacedAt:    entry.PlacedAt,
	}).Error
}

func (r *DefaultBidLedgerRepository) LogSellerBid(entry *domain.BidHistoryEntry) error {
	return r.DB.Create(&models.SellerBidEntryModel{
		ID:          entry.ID,
		SellerID:    entry.SellerID,
		AuctionID:   entry.AuctionID,
		AuctionCode: entry.AuctionCode,
		BidderID:    entry.BidderID,
		Amount:      entry.Amount,
		PlacedAt:    entry.PlacedAt,
	}).Error
}

func (r *DefaultBidLedgerRepository) GetUserBids(userID string, page, limit int) ([]*domain.BidHistoryEntry, int64, error) {
	var entryModels []models.UserBidEntryModel
	var total int64

	query := r.DB.Model(&models.UserBidEntryModel{}).Where("bidder_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("placed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*domain.BidHistoryEntry, len(entryModels))
	for i, m := range entryModels {
		entries[i] = &domain.BidHistoryEntry{
			ID:          m.ID,
			AuctionID:   m.AuctionID,
			AuctionCode: m.AuctionCode,
			BidderID:    m.BidderID,
			SellerID:    m.SellerID,
			Amount:      m.Amount,
			PlacedAt:    m.PlacedAt,
		}
	}
	return entries, total, nil
}

func (r *DefaultBidLedgerRepository) GetSellerBids(sellerID string, page, limit int) ([]*domain.BidHistoryEntry, int64, error) {
	var entryModels []models.SellerBidEntryModel
	var total int64

	query := r.DB.Model(&models.SellerBidEntryModel{}).Where("seller_id = ?", sellerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("placed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*domain.BidHistoryEntry, len(entryModels))
	for i, m := range entryModels {
		entries[i] = &domain.BidHistoryEntry{
			ID:          m.ID,
			AuctionID:   m.AuctionID,
			AuctionCode: m.AuctionCode,
			BidderID:    m.BidderID,
			SellerID:    m.SellerID,
			Amount:      m.Amount,
			PlacedAt:    m.PlacedAt,
		}
	}
	return entries, total, nil
}
