package models

// MembershipModel is a loan relationship between one user and one book. The
// referenced rows must exist when a membership is written; nothing prevents them
// from being deleted afterwards.
type MembershipModel struct {
	MembershipID int `json:"membership_id" gorm:"column:membership_id;primaryKey;autoIncrement"`
	UserID       int `json:"user_id" gorm:"column:user_id"`
	BookID       int `json:"book_id" gorm:"column:book_id"`
}

func (MembershipModel) TableName() string { return "book_membership" }
