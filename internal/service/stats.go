package service

import (
	"fmt"
	"time"

	"cx-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// StatsService computes per-stage duration statistics over the transition log
type StatsService struct {
	stageRepo      repository.StageRepositoryInterface
	transitionRepo repository.TransitionRepositoryInterface

	// NowFunc supplies the aggregator clock; overridable in tests
	NowFunc func() time.Time
}

// Ensure StatsService implements StatsServiceInterface
var _ StatsServiceInterface = (*StatsService)(nil)

// NewStatsService creates a new StatsService
func NewStatsService(stageRepo repository.StageRepositoryInterface, transitionRepo repository.TransitionRepositoryInterface) *StatsService {
	return &StatsService{
		stageRepo:      stageRepo,
		transitionRepo: transitionRepo,
		NowFunc:        time.Now,
	}
}

// StageStatsResponse represents duration statistics for one stage
type StageStatsResponse struct {
	StageID              uuid.UUID `json:"stage_id"`
	StageName            string    `json:"stage_name"`
	ExpectedDurationDays *int      `json:"expected_duration_days"`
	AverageDurationDays  float64   `json:"average_duration_days"`
	ActiveCount          int       `json:"active_count"`
	OverdueCount         int       `json:"overdue_count"`
}

// ComputeStageStats returns one entry per stage in catalog order. Averages
// cover only closed inbound transitions; active and overdue counts cover open
// ones. Durations are whole days, truncated.
func (s *StatsService) ComputeStageStats() ([]StageStatsResponse, error) {
	stages, err := s.stageRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}

	transitions, err := s.transitionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get transitions: %w", err)
	}

	now := s.NowFunc()

	type bucket struct {
		closedSum   int
		closedCount int
		active      int
		overdue     int
	}
	buckets := make(map[uuid.UUID]*bucket, len(stages))
	for i := range stages {
		buckets[stages[i].ID] = &bucket{}
	}

	for i := range transitions {
		t := &transitions[i]
		if t.ToStageID == nil {
			continue
		}
		b, ok := buckets[*t.ToStageID]
		if !ok {
			continue
		}
		if t.IsActive() {
			b.active++
			if t.IsOverdue(now) {
				b.overdue++
			}
			continue
		}
		b.closedSum += t.DurationDays(now)
		b.closedCount++
	}

	stats := make([]StageStatsResponse, len(stages))
	for i := range stages {
		stage := &stages[i]
		b := buckets[stage.ID]

		avg := 0.0
		if b.closedCount > 0 {
			avg = float64(b.closedSum) / float64(b.closedCount)
		}

		stats[i] = StageStatsResponse{
			StageID:              stage.ID,
			StageName:            stage.Name,
			ExpectedDurationDays: stage.ExpectedDurationDays,
			AverageDurationDays:  avg,
			ActiveCount:          b.active,
			OverdueCount:         b.overdue,
		}
	}

	return stats, nil
}
