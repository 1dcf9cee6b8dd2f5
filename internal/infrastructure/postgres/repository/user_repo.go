package repository

import (
	"errors"
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultUserDirectory resolves callers from the shared users table.
// Accounts are written by the identity service, never from here.
type DefaultUserDirectory struct {
	DB *gorm.DB
}

func NewDefaultUserDirectory(db *gorm.DB) *DefaultUserDirectory {
	return &DefaultUserDirectory{DB: db}
}

func (r *DefaultUserDirectory) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(fmt.Sprintf("user %s not found", userID))
		}
		return nil, err
	}
	return &domain.User{
		ID:        userModel.ID,
		FullName:  userModel.FullName,
		Email:     userModel.Email,
		Phone:     userModel.Phone,
		Role:      userModel.Role,
		Suspended: userModel.Suspended,
	}, nil
}
