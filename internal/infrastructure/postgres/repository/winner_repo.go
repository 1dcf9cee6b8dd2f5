package repository

import (
	"errors"
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/mappers"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultWinnerRepository struct {
	DB *gorm.DB
}

func NewDefaultWinnerRepository(db *gorm.DB) *DefaultWinnerRepository {
	return &DefaultWinnerRepository{DB: db}
}

// CreateIfAbsent is a conditional insert against the unique index on
// auction_id. Check-then-create would race under concurrent sweeps; ON
// CONFLICT DO NOTHING leaves exactly one winner no matter how many pass.
func (r *DefaultWinnerRepository) CreateIfAbsent(winner *domain.Winner) error {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auction_id"}},
		DoNothing: true,
	}).Create(mappers.ToGORMWinner(winner))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrWinnerExists
	}
	return nil
}

func (r *DefaultWinnerRepository) GetWinnerByAuctionID(auctionID string) (*domain.Winner, error) {
	var winnerModel models.WinnerModel
	if err := r.DB.First(&winnerModel, "auction_id = ?", auctionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(fmt.Sprintf("no winner recorded for auction %s", auctionID))
		}
		return nil, err
	}
	return mappers.ToDomainWinner(&winnerModel), nil
}

func (r *DefaultWinnerRepository) MarkNotified(winnerID string) error {
	return r.DB.Model(&models.WinnerModel{}).
		Where("id = ?", winnerID).
		Update("notified", true).Error
}
