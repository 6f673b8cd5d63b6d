package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPhaseDisplay(t *testing.T) {
	stageID := uuid.New()

	t.Run("StageAssigned", func(t *testing.T) {
		p := &CxPipeline{
			StageID: &stageID,
			Stage:   &PipelineStage{Name: "Negotiation"},
			Status:  LegacyStatusLead,
		}
		assert.Equal(t, "Negotiation", p.PhaseDisplay())
	})

	t.Run("LegacyFallback", func(t *testing.T) {
		p := &CxPipeline{Status: LegacyStatusOnboarding}
		assert.Equal(t, "Onboarding", p.PhaseDisplay())
	})

	t.Run("StageIDWithoutPreload", func(t *testing.T) {
		// Stage not preloaded: fall back to the legacy label rather than panic
		p := &CxPipeline{StageID: &stageID, Status: LegacyStatusRenewal}
		assert.Equal(t, "Renewal/Closure", p.PhaseDisplay())
	})
}

func TestCurrentStageDurationDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("NoStageEntered", func(t *testing.T) {
		p := &CxPipeline{}
		assert.Equal(t, 0, p.CurrentStageDurationDays(now))
	})

	t.Run("TruncatesToWholeDays", func(t *testing.T) {
		// 3 days and 23 hours ago counts as 3 days
		start := now.Add(-(3*24 + 23) * time.Hour)
		p := &CxPipeline{StageStartDate: &start}
		assert.Equal(t, 3, p.CurrentStageDurationDays(now))
	})

	t.Run("SameDay", func(t *testing.T) {
		start := now.Add(-5 * time.Hour)
		p := &CxPipeline{StageStartDate: &start}
		assert.Equal(t, 0, p.CurrentStageDurationDays(now))
	})

	t.Run("NeverNegative", func(t *testing.T) {
		// clock skew: start recorded after now
		start := now.Add(48 * time.Hour)
		p := &CxPipeline{StageStartDate: &start}
		assert.Equal(t, 0, p.CurrentStageDurationDays(now))
	})
}

func TestIsStageOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	stageID := uuid.New()
	sla := 7

	t.Run("OverSLA", func(t *testing.T) {
		start := now.Add(-10 * 24 * time.Hour)
		p := &CxPipeline{
			StageID:        &stageID,
			Stage:          &PipelineStage{ExpectedDurationDays: &sla},
			StageStartDate: &start,
		}
		assert.True(t, p.IsStageOverdue(now))
	})

	t.Run("ExactlyAtSLA", func(t *testing.T) {
		// 7 days in a 7-day stage is not yet overdue
		start := now.Add(-7 * 24 * time.Hour)
		p := &CxPipeline{
			StageID:        &stageID,
			Stage:          &PipelineStage{ExpectedDurationDays: &sla},
			StageStartDate: &start,
		}
		assert.False(t, p.IsStageOverdue(now))
	})

	t.Run("NoSLA", func(t *testing.T) {
		start := now.Add(-100 * 24 * time.Hour)
		p := &CxPipeline{
			StageID:        &stageID,
			Stage:          &PipelineStage{},
			StageStartDate: &start,
		}
		assert.False(t, p.IsStageOverdue(now))
	})

	t.Run("NoStage", func(t *testing.T) {
		p := &CxPipeline{Status: LegacyStatusLead}
		assert.False(t, p.IsStageOverdue(now))
	})
}

func TestLegacyStatusLabels(t *testing.T) {
	assert.Equal(t, "Lead/Prospect", LegacyStatusLead.Label())
	assert.Equal(t, "Negotiation", LegacyStatusNegotiation.Label())
	assert.Equal(t, "Onboarding", LegacyStatusOnboarding.Label())
	assert.Equal(t, "Active Engagement", LegacyStatusActiveEngagement.Label())
	assert.Equal(t, "Renewal/Closure", LegacyStatusRenewal.Label())
	assert.Equal(t, "Unknown", LegacyStatus(9).Label())

	assert.True(t, LegacyStatusLead.IsValid())
	assert.False(t, LegacyStatus(0).IsValid())
	assert.False(t, LegacyStatus(6).IsValid())
	assert.Len(t, AllLegacyStatuses(), 5)
}
