package services

import (
	"errors"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// GetUserByID retrieves a User record by its ID
func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceUser, id)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new User record; the primary key is store-assigned
func (s *UserService) CreateUser(user *models.UserModel) (*models.UserModel, error) {
	user.UserID = 0
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser overwrites every mutable field of an existing User record
func (s *UserService) UpdateUser(id int, user *models.UserModel) (*models.UserModel, error) {
	var existing models.UserModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceUser, id)
		}
		return nil, err
	}

	user.UserID = id
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a User record by its ID
func (s *UserService) DeleteUser(id int) error {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceUser, id)
		}
		return err
	}
	return s.db.Delete(&models.UserModel{}, id).Error
}
