package models

import "strings"

// CxUser is a staff identity (account manager or acting operator). Owned by the
// auth domain; referenced here by id only.
type CxUser struct {
	BaseModel
	Username  string `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,max=150"`
	FirstName string `json:"first_name" gorm:"size:150"`
	LastName  string `json:"last_name" gorm:"size:150"`
	Email     string `json:"email" gorm:"size:200" validate:"omitempty,email"`
}

// TableName returns the table name for CxUser
func (CxUser) TableName() string {
	return "cx_users"
}

// DisplayName returns the full name, falling back to the username when empty
func (u *CxUser) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}
	return full
}
