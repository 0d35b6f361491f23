package services

import (
	"testing"

	"github.com/openshelf/library-backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory store with the full schema migrated.
// Connections are capped at one so every statement sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.BookModel{},
		&models.UserModel{},
		&models.RequestedBookModel{},
		&models.MembershipModel{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.UserModel {
	t.Helper()
	user := &models.UserModel{Username: "alice", Email: "a@x.com", PhoneNo: "123"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBook(t *testing.T, db *gorm.DB) *models.BookModel {
	t.Helper()
	pubDate := "1965-01-01"
	book := &models.BookModel{
		Title:           "Dune",
		ISBN:            "0001",
		Author:          "Herbert",
		PublicationDate: &pubDate,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}
