package models

type UserModel struct {
	UserID   int    `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255)"`
	Email    string `json:"email" gorm:"column:email;type:varchar(255)"`
	PhoneNo  string `json:"phone_no" gorm:"column:phone_no;type:varchar(20)"`
}

func (UserModel) TableName() string { return "users" }
