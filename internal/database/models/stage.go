package models

import (
	"github.com/google/uuid"
)

// PipelineStage is a named phase of the CRM lifecycle. Stages form a total
// order by SortOrder (ties broken by name) and optionally carry an expected
// duration SLA in days.
type PipelineStage struct {
	BaseModel
	Name                 string     `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description          string     `json:"description" gorm:"size:500" validate:"max=500"`
	SortOrder            int        `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	IsDefault            bool       `json:"is_default" gorm:"not null;default:false"`
	ExpectedDurationDays *int       `json:"expected_duration_days" validate:"omitempty,min=1"`
	CreatedByID          *uuid.UUID `json:"created_by_id" gorm:"type:uuid"`

	CreatedBy *CxUser `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PipelineStage
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}

// HasSLA reports whether the stage carries an expected duration
func (s *PipelineStage) HasSLA() bool {
	return s.ExpectedDurationDays != nil
}
