package models

import (
	"time"

	"github.com/google/uuid"
)

// StageTransition is one historical occupancy of a stage by a pipeline. A nil
// FromStageID marks the initial transition; a nil ExitDate marks the open one.
// At most one transition per pipeline is open at any time.
type StageTransition struct {
	BaseModel
	PipelineID  uuid.UUID  `json:"pipeline_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromStageID *uuid.UUID `json:"from_stage_id" gorm:"type:uuid"`
	ToStageID   *uuid.UUID `json:"to_stage_id" gorm:"type:uuid;index"`
	EntryDate   time.Time  `json:"entry_date" gorm:"not null;index"`
	ExitDate    *time.Time `json:"exit_date"`
	UserID      *uuid.UUID `json:"user_id" gorm:"type:uuid"`

	Pipeline  CxPipeline     `json:"-" gorm:"foreignKey:PipelineID;constraint:OnDelete:CASCADE"`
	FromStage *PipelineStage `json:"from_stage,omitempty" gorm:"foreignKey:FromStageID;constraint:OnDelete:SET NULL"`
	ToStage   *PipelineStage `json:"to_stage,omitempty" gorm:"foreignKey:ToStageID;constraint:OnDelete:SET NULL"`
	User      *CxUser        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for StageTransition
func (StageTransition) TableName() string {
	return "stage_transitions"
}

// IsActive reports whether the transition is still open
func (t *StageTransition) IsActive() bool {
	return t.ExitDate == nil
}

// DurationDays returns whole days between entry and exit, using now for open
// transitions. Truncated, never negative.
func (t *StageTransition) DurationDays(now time.Time) int {
	end := now
	if t.ExitDate != nil {
		end = *t.ExitDate
	}
	return wholeDays(t.EntryDate, end)
}

// IsOverdue reports whether an open transition has outlived its target stage's
// SLA. Always false for closed transitions or stages without an SLA; requires
// ToStage to be preloaded.
func (t *StageTransition) IsOverdue(now time.Time) bool {
	if !t.IsActive() || t.ToStage == nil || !t.ToStage.HasSLA() {
		return false
	}
	return t.DurationDays(now) > *t.ToStage.ExpectedDurationDays
}
