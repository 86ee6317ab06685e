package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// GormChartStore persists charts through the shared GORM connection.
type GormChartStore struct{}

func NewChartStore() *GormChartStore {
	return &GormChartStore{}
}

func (s *GormChartStore) Create(chart *models.Chart) error {
	return DB.Create(chart).Error
}

func (s *GormChartStore) ForOwner(ownerID uint) ([]models.Chart, error) {
	var charts []models.Chart
	result := DB.Where("owner_id = ?", ownerID).Order("id").Find(&charts)
	return charts, result.Error
}

func (s *GormChartStore) FindByID(id uint) (*models.Chart, error) {
	var chart models.Chart
	err := DB.First(&chart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chart, nil
}
