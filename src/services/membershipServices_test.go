package services

import (
	"testing"

	"github.com/openshelf/library-backend/src/apperrors"
	"github.com/openshelf/library-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMembershipService(db *gorm.DB) *MembershipService {
	return NewMembershipService(db, NewMembershipValidator(db))
}

func TestMembershipCreate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	service := newMembershipService(db)

	created, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	require.NoError(t, err)
	assert.NotZero(t, created.MembershipID)

	fetched, err := service.GetMembershipByID(created.MembershipID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestMembershipCreateMissingUser(t *testing.T) {
	db := newTestDB(t)
	book := createTestBook(t, db)
	service := newMembershipService(db)

	_, err := service.CreateMembership(&models.MembershipModel{UserID: 55, BookID: book.BookID})
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceUser, nf.Resource)
	assert.Equal(t, 55, nf.ID)

	memberships, err := service.GetAllMemberships()
	require.NoError(t, err)
	assert.Empty(t, memberships)
}

func TestMembershipCreateMissingBook(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := newMembershipService(db)

	_, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: 77})
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceBook, nf.Resource)
	assert.Equal(t, 77, nf.ID)
}

func TestMembershipUpdate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	otherBook := createTestBook(t, db)
	service := newMembershipService(db)

	created, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	require.NoError(t, err)

	updated, err := service.UpdateMembership(created.MembershipID, &models.MembershipModel{UserID: user.UserID, BookID: otherBook.BookID})
	require.NoError(t, err)
	assert.Equal(t, created.MembershipID, updated.MembershipID)
	assert.Equal(t, otherBook.BookID, updated.BookID)
}

func TestMembershipUpdateUnknownMembership(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	service := newMembershipService(db)

	_, err := service.UpdateMembership(13, &models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceMembership, nf.Resource)
	assert.Equal(t, 13, nf.ID)
}

func TestMembershipUpdateInvalidReferenceLeavesRowUntouched(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	service := newMembershipService(db)

	created, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	require.NoError(t, err)

	_, err = service.UpdateMembership(created.MembershipID, &models.MembershipModel{UserID: user.UserID, BookID: 404})
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceBook, nf.Resource)

	fetched, err := service.GetMembershipByID(created.MembershipID)
	require.NoError(t, err)
	assert.Equal(t, book.BookID, fetched.BookID)
	assert.Equal(t, user.UserID, fetched.UserID)
}

// A membership keeps referencing a user deleted after the write; the stale
// reference only surfaces on the next mutation that re-validates it.
func TestMembershipDanglingReferenceSurfacesOnNextWrite(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	service := newMembershipService(db)
	userService := NewUserService(db)

	created, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	require.NoError(t, err)

	require.NoError(t, userService.DeleteUser(user.UserID))

	// The existing row still dangles; reads keep working.
	fetched, err := service.GetMembershipByID(created.MembershipID)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, fetched.UserID)

	// Re-writing the same reference now fails, naming the user.
	_, err = service.UpdateMembership(created.MembershipID, &models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceUser, nf.Resource)
	assert.Equal(t, user.UserID, nf.ID)
}

func TestMembershipDelete(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	book := createTestBook(t, db)
	service := newMembershipService(db)

	created, err := service.CreateMembership(&models.MembershipModel{UserID: user.UserID, BookID: book.BookID})
	require.NoError(t, err)

	require.NoError(t, service.DeleteMembership(created.MembershipID))

	err = service.DeleteMembership(created.MembershipID)
	nf := apperrors.AsNotFound(err)
	require.NotNil(t, nf)
	assert.Equal(t, apperrors.ResourceMembership, nf.Resource)
}
