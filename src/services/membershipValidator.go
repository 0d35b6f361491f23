package services

import (
	"errors"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

// MembershipValidator confirms that the user and book referenced by a membership
// exist before the membership is written. The user is always checked first, so
// when both references are invalid the error names the user.
type MembershipValidator struct {
	db *gorm.DB
}

// NewMembershipValidator creates a new instance of MembershipValidator
func NewMembershipValidator(db *gorm.DB) *MembershipValidator {
	return &MembershipValidator{db: db}
}

// Validate returns nil when both references exist, or a NotFoundError naming
// the first missing reference. The checks and the caller's subsequent write are
// separate statements; a referenced row can be deleted in between.
func (v *MembershipValidator) Validate(userID, bookID int) error {
	var user models.UserModel
	if err := v.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceUser, userID)
		}
		return err
	}

	var book models.BookModel
	if err := v.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.ResourceBook, bookID)
		}
		return err
	}

	return nil
}
