package services

import (
	"errors"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new instance of BookService
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// GetAllBooks retrieves all Book records from the database
func (s *BookService) GetAllBooks() ([]models.BookModel, error) {
	var books []models.BookModel
	result := s.db.Find(&books)
	if result.Error != nil {
		return nil, result.Error
	}
	return books, nil
}

// GetBookByID retrieves a Book record by its ID
func (s *BookService) GetBookByID(id int) (*models.BookModel, error) {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceBook, id)
		}
		return nil, err
	}
	return &book, nil
}

// CreateBook creates a new Book record; the primary key is store-assigned
func (s *BookService) CreateBook(book *models.BookModel) (*models.BookModel, error) {
	book.BookID = 0
	if err := s.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook overwrites every mutable field of an existing Book record.
// The existence check and the write are separate statements; a concurrent
// delete between them is not guarded against.
func (s *BookService) UpdateBook(id int, book *models.BookModel) (*models.BookModel, error) {
	var existing models.BookModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceBook, id)
		}
		return nil, err
	}

	book.BookID = id
	if err := s.db.Save(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook deletes a Book record by its ID
func (s *BookService) DeleteBook(id int) error {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceBook, id)
		}
		return err
	}
	return s.db.Delete(&models.BookModel{}, id).Error
}
