package models

// RequestedBookModel is an acquisition request submitted by a user. Its book_id is
// its own sequence, not a reference into the books table.
type RequestedBookModel struct {
	BookID          int     `json:"book_id" gorm:"column:book_id;primaryKey;autoIncrement"`
	Title           string  `json:"title" gorm:"column:title;type:text"`
	ISBN            string  `json:"isbn" gorm:"column:isbn;type:text"`
	Author          string  `json:"author" gorm:"column:author;type:text"`
	PublicationDate *string `json:"publication_date" gorm:"column:publication_date;type:date"`
}

func (RequestedBookModel) TableName() string { return "request_books" }
