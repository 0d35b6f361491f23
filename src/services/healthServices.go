package services

import (
	"gorm.io/gorm"
)

type HealthService struct {
	db *gorm.DB
}

// NewHealthService creates a new instance of HealthService
func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// ServerTime asks the store for its current timestamp, which doubles as a
// connectivity check.
func (s *HealthService) ServerTime() (string, error) {
	var now string
	if err := s.db.Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		return "", err
	}
	return now, nil
}
