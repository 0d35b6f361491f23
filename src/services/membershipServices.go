package services

import (
	"errors"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

type MembershipService struct {
	db        *gorm.DB
	validator *MembershipValidator
}

// NewMembershipService creates a new instance of MembershipService
func NewMembershipService(db *gorm.DB, validator *MembershipValidator) *MembershipService {
	return &MembershipService{db: db, validator: validator}
}

// GetAllMemberships retrieves all Membership records from the database
func (s *MembershipService) GetAllMemberships() ([]models.MembershipModel, error) {
	var memberships []models.MembershipModel
	result := s.db.Find(&memberships)
	if result.Error != nil {
		return nil, result.Error
	}
	return memberships, nil
}

// GetMembershipByID retrieves a Membership record by its ID
func (s *MembershipService) GetMembershipByID(id int) (*models.MembershipModel, error) {
	var membership models.MembershipModel
	if err := s.db.First(&membership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceMembership, id)
		}
		return nil, err
	}
	return &membership, nil
}

// CreateMembership validates both references, then inserts the membership.
// Validation and the insert are separate statements, not a transaction.
func (s *MembershipService) CreateMembership(membership *models.MembershipModel) (*models.MembershipModel, error) {
	if err := s.validator.Validate(membership.UserID, membership.BookID); err != nil {
		return nil, err
	}

	membership.MembershipID = 0
	if err := s.db.Create(membership).Error; err != nil {
		return nil, err
	}
	return membership, nil
}

// UpdateMembership checks the membership exists, validates the new references,
// then overwrites user_id and book_id. On a validation failure the existing row
// is left untouched.
func (s *MembershipService) UpdateMembership(id int, membership *models.MembershipModel) (*models.MembershipModel, error) {
	var existing models.MembershipModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.ResourceMembership, id)
		}
		return nil, err
	}

	if err := s.validator.Validate(membership.UserID, membership.BookID); err != nil {
		return nil, err
	}

	existing.UserID = membership.UserID
	existing.BookID = membership.BookID
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteMembership deletes a Membership record by its ID
func (s *MembershipService) DeleteMembership(id int) error {
	var membership models.MembershipModel
	if err := s.db.First(&membership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceMembership, id)
		}
		return err
	}
	return s.db.Delete(&models.MembershipModel{}, id).Error
}
