package models

import (
	"time"

	"github.com/google/uuid"
)

// CxPipeline is one tracked CRM engagement for a client. Its current phase is
// either the referenced stage or, for records predating the stage catalog, the
// legacy numeric status.
type CxPipeline struct {
	BaseModel
	ClientID         uuid.UUID    `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	StageID          *uuid.UUID   `json:"stage_id" gorm:"type:uuid;index"`
	Status           LegacyStatus `json:"status" gorm:"not null;default:1"`
	Notes            string       `json:"notes" gorm:"type:text" validate:"max=2000"`
	AccountManagerID *uuid.UUID   `json:"account_manager_id" gorm:"type:uuid"`
	StageStartDate   *time.Time   `json:"stage_start_date"`
	LastUpdated      time.Time    `json:"last_updated" gorm:"autoUpdateTime"`

	Client         CxClient       `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Stage          *PipelineStage `json:"stage,omitempty" gorm:"foreignKey:StageID;constraint:OnDelete:RESTRICT"`
	AccountManager *CxUser        `json:"account_manager,omitempty" gorm:"foreignKey:AccountManagerID;constraint:OnDelete:SET NULL"`

	Transitions []StageTransition  `json:"transitions,omitempty" gorm:"foreignKey:PipelineID;constraint:OnDelete:CASCADE"`
	Activities  []PipelineActivity `json:"activities,omitempty" gorm:"foreignKey:PipelineID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CxPipeline
func (CxPipeline) TableName() string {
	return "cx_pipelines"
}

// PhaseDisplay resolves the current phase label: the stage name when a stage is
// assigned, otherwise the legacy status label. Requires Stage to be preloaded
// when StageID is set.
func (p *CxPipeline) PhaseDisplay() string {
	if p.StageID != nil && p.Stage != nil {
		return p.Stage.Name
	}
	return p.Status.Label()
}

// CurrentStageDurationDays returns whole days spent in the current stage, or 0
// when no stage has been entered.
func (p *CxPipeline) CurrentStageDurationDays(now time.Time) int {
	if p.StageStartDate == nil {
		return 0
	}
	return wholeDays(*p.StageStartDate, now)
}

// IsStageOverdue reports whether time in the current stage exceeds its SLA.
// Always false when no stage is set or the stage has no SLA configured.
func (p *CxPipeline) IsStageOverdue(now time.Time) bool {
	if p.StageID == nil || p.Stage == nil || !p.Stage.HasSLA() || p.StageStartDate == nil {
		return false
	}
	return p.CurrentStageDurationDays(now) > *p.Stage.ExpectedDurationDays
}

// wholeDays truncates the elapsed time between two instants to whole days,
// never negative.
func wholeDays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
