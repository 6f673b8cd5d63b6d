package models

// CxClient is the CRM customer identity pipelines belong to. It is owned by the
// auth domain; this service only references it by id.
type CxClient struct {
	BaseModel
	Name    string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email   string `json:"email" gorm:"size:200" validate:"omitempty,email"`
	Company string `json:"company" gorm:"size:200"`
	Phone   string `json:"phone" gorm:"size:50"`
}

// TableName returns the table name for CxClient
func (CxClient) TableName() string {
	return "cx_clients"
}
