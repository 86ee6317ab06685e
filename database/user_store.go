package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// GormUserStore persists users through the shared GORM connection.
type GormUserStore struct{}

func NewUserStore() *GormUserStore {
	return &GormUserStore{}
}

func (s *GormUserStore) Create(user *models.User) error {
	return DB.Create(user).Error
}

func (s *GormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
