package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitionIsActive(t *testing.T) {
	now := time.Now()

	open := &StageTransition{EntryDate: now}
	assert.True(t, open.IsActive())

	closed := &StageTransition{EntryDate: now.Add(-24 * time.Hour), ExitDate: &now}
	assert.False(t, closed.IsActive())
}

func TestTransitionDurationDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ClosedUsesExitDate", func(t *testing.T) {
		entry := now.Add(-20 * 24 * time.Hour)
		exit := entry.Add(5*24*time.Hour + 6*time.Hour)
		tr := &StageTransition{EntryDate: entry, ExitDate: &exit}
		assert.Equal(t, 5, tr.DurationDays(now))
	})

	t.Run("OpenUsesNow", func(t *testing.T) {
		entry := now.Add(-10 * 24 * time.Hour)
		tr := &StageTransition{EntryDate: entry}
		assert.Equal(t, 10, tr.DurationDays(now))
	})

	t.Run("NeverNegative", func(t *testing.T) {
		entry := now.Add(24 * time.Hour)
		tr := &StageTransition{EntryDate: entry}
		assert.Equal(t, 0, tr.DurationDays(now))
	})
}

func TestTransitionIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sla := 7

	t.Run("OpenOverSLA", func(t *testing.T) {
		entry := now.Add(-8 * 24 * time.Hour)
		tr := &StageTransition{
			EntryDate: entry,
			ToStage:   &PipelineStage{ExpectedDurationDays: &sla},
		}
		assert.True(t, tr.IsOverdue(now))
	})

	t.Run("OpenWithinSLA", func(t *testing.T) {
		entry := now.Add(-3 * 24 * time.Hour)
		tr := &StageTransition{
			EntryDate: entry,
			ToStage:   &PipelineStage{ExpectedDurationDays: &sla},
		}
		assert.False(t, tr.IsOverdue(now))
	})

	t.Run("ClosedNeverOverdue", func(t *testing.T) {
		entry := now.Add(-30 * 24 * time.Hour)
		exit := now.Add(-time.Hour)
		tr := &StageTransition{
			EntryDate: entry,
			ExitDate:  &exit,
			ToStage:   &PipelineStage{ExpectedDurationDays: &sla},
		}
		assert.False(t, tr.IsOverdue(now))
	})

	t.Run("NoSLAOrNoPreload", func(t *testing.T) {
		entry := now.Add(-100 * 24 * time.Hour)
		assert.False(t, (&StageTransition{EntryDate: entry, ToStage: &PipelineStage{}}).IsOverdue(now))
		assert.False(t, (&StageTransition{EntryDate: entry}).IsOverdue(now))
	})
}
