package services

import (
	"errors"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

type RequestedBookService struct {
	db *gorm.DB
}

// NewRequestedBookService creates a new instance of RequestedBookService
func NewRequestedBookService(db *gorm.DB) *RequestedBookService {
	return &RequestedBookService{db: db}
}

// GetAllRequestedBooks retrieves all RequestedBook records from the database
func (s *RequestedBookService) GetAllRequestedBooks() ([]models.RequestedBookModel, error) {
	var requests []models.RequestedBookModel
	result := s.db.Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

// GetRequestedBookByID retrieves a RequestedBook record by its ID
func (s *RequestedBookService) GetRequestedBookByID(id int) (*models.RequestedBookModel, error) {
	var request models.RequestedBookModel
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceRequestedBook, id)
		}
		return nil, err
	}
	return &request, nil
}

// CreateRequestedBook creates a new RequestedBook record
func (s *RequestedBookService) CreateRequestedBook(request *models.RequestedBookModel) (*models.RequestedBookModel, error) {
	request.BookID = 0
	if err := s.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateRequestedBook overwrites every mutable field of an existing record
func (s *RequestedBookService) UpdateRequestedBook(id int, request *models.RequestedBookModel) (*models.RequestedBookModel, error) {
	var existing models.RequestedBookModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceRequestedBook, id)
		}
		return nil, err
	}

	request.BookID = id
	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// DeleteRequestedBook deletes a RequestedBook record by its ID
func (s *RequestedBookService) DeleteRequestedBook(id int) error {
	var request models.RequestedBookModel
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceRequestedBook, id)
		}
		return err
	}
	return s.db.Delete(&models.RequestedBookModel{}, id).Error
}
