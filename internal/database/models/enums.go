package models

// LegacyStatus is the pre-stage numeric pipeline status (1..5), kept for
// backward compatibility with records created before the stage catalog existed.
type LegacyStatus int

const (
	LegacyStatusLead LegacyStatus = iota + 1
	LegacyStatusNegotiation
	LegacyStatusOnboarding
	LegacyStatusActiveEngagement
	LegacyStatusRenewal
)

var legacyStatusLabels = map[LegacyStatus]string{
	LegacyStatusLead:             "Lead/Prospect",
	LegacyStatusNegotiation:      "Negotiation",
	LegacyStatusOnboarding:       "Onboarding",
	LegacyStatusActiveEngagement: "Active Engagement",
	LegacyStatusRenewal:          "Renewal/Closure",
}

// Label returns the human-readable name for the legacy status
func (s LegacyStatus) Label() string {
	if label, ok := legacyStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// IsValid checks if the LegacyStatus is a known code
func (s LegacyStatus) IsValid() bool {
	_, ok := legacyStatusLabels[s]
	return ok
}

// AllLegacyStatuses returns the legacy codes in ascending order
func AllLegacyStatuses() []LegacyStatus {
	return []LegacyStatus{
		LegacyStatusLead,
		LegacyStatusNegotiation,
		LegacyStatusOnboarding,
		LegacyStatusActiveEngagement,
		LegacyStatusRenewal,
	}
}

// ActivityKind classifies pipeline audit-log entries
type ActivityKind string

const (
	ActivityKindStageChange   ActivityKind = "stage_change"
	ActivityKindNoteAdded     ActivityKind = "note_added"
	ActivityKindManagerChange ActivityKind = "manager_change"
	ActivityKindCustom        ActivityKind = "custom"
)

// IsValid checks if the ActivityKind is valid
func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityKindStageChange, ActivityKindNoteAdded, ActivityKindManagerChange, ActivityKindCustom:
		return true
	}
	return false
}
