package postgres

import (
	"log"

	"github.com/openmazad/auction-service/internal/config"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AuctionConfig) *gorm.DB {
	dsn := cfg.AuctionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.AuctionModel{},
		&models.AuctionRequestModel{},
		&models.PaymentRequestModel{},
		&models.WinnerModel{},
		&models.UserBidEntryModel{},
		&models.SellerBidEntryModel{},
	)

	return db
}
