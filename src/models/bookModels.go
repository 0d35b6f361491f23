package models

type BookModel struct {
	BookID          int     `json:"book_id" gorm:"column:book_id;primaryKey;autoIncrement"`
	Title           string  `json:"title" gorm:"column:title;type:text"`
	ISBN            string  `json:"isbn" gorm:"column:isbn;type:text"`
	Author          string  `json:"author" gorm:"column:author;type:text"`
	PublicationDate *string `json:"publication_date" gorm:"column:publication_date;type:date"`
	Borrowed        bool    `json:"borrowed" gorm:"column:borrowed"`
	ReturnDate      *string `json:"return_date" gorm:"column:return_date;type:date"`
}

func (BookModel) TableName() string { return "books" }
