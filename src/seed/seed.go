package seed

import (
	"log"

	"github.com/openshelf/library-backend/src/models"
	"gorm.io/gorm"
)

// Seed inserts a handful of development rows when they are not already present.
func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("username = ?", "librarian").First(&user)
	if result.Error == nil {
		log.Println("User 'librarian' already exists")
	} else {
		newUser := models.UserModel{
			Username: "librarian",
			Email:    "librarian@example.com",
			PhoneNo:  "000-000-0000",
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'librarian' created")
		}
	}

	// Books
	duneDate := "1965-08-01"
	leftHandDate := "1969-03-01"
	books := []models.BookModel{
		{Title: "Dune", ISBN: "9780441013593", Author: "Frank Herbert", PublicationDate: &duneDate},
		{Title: "The Left Hand of Darkness", ISBN: "9780441478125", Author: "Ursula K. Le Guin", PublicationDate: &leftHandDate},
	}
	createdCount := 0
	for _, book := range books {
		var existing models.BookModel
		checkResult := db.Where("isbn = ?", book.ISBN).First(&existing)
		if checkResult.Error == nil {
			log.Printf("Book with isbn %s already exists, skipping\n", book.ISBN)
		} else {
			if err := db.Create(&book).Error; err != nil {
				log.Printf("Failed to create book %q: %v\n", book.Title, err)
			} else {
				createdCount++
			}
		}
	}
	log.Printf("Seeding complete, %d book(s) created\n", createdCount)
}
