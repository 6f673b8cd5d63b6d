package models

import (
	"github.com/google/uuid"
)

// snapshotMaxRunes bounds old/new value snapshots for display parity
const snapshotMaxRunes = 100

// PipelineActivity is an append-only audit entry for a pipeline mutation.
// Rows are never updated or deleted; CreatedAt is the activity timestamp.
type PipelineActivity struct {
	BaseModel
	PipelineID  uuid.UUID    `json:"pipeline_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID      *uuid.UUID   `json:"user_id" gorm:"type:uuid"`
	Kind        ActivityKind `json:"kind" gorm:"type:varchar(50);not null" validate:"required"`
	Description string       `json:"description" gorm:"type:text"`
	OldValue    string       `json:"old_value" gorm:"size:120"`
	NewValue    string       `json:"new_value" gorm:"size:120"`

	Pipeline CxPipeline `json:"-" gorm:"foreignKey:PipelineID;constraint:OnDelete:CASCADE"`
	User     *CxUser    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PipelineActivity
func (PipelineActivity) TableName() string {
	return "pipeline_activities"
}

// TruncateSnapshot cuts a value snapshot to 100 runes plus an ellipsis marker
func TruncateSnapshot(value string) string {
	runes := []rune(value)
	if len(runes) <= snapshotMaxRunes {
		return value
	}
	return string(runes[:snapshotMaxRunes]) + "..."
}
