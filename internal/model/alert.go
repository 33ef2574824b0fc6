package model

import "time"

type AlertPriority string

const (
	PriorityLow      AlertPriority = "low"
	PriorityMedium   AlertPriority = "medium"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

// Priorities lists all known priorities in ascending severity.
var Priorities = []AlertPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is a known priority.
func (p AlertPriority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// PriorityFilter maps each priority to whether it is currently shown.
// The zero value shows nothing; use AllPriorities for the default filter.
type PriorityFilter map[AlertPriority]bool

// AllPriorities returns a filter with every priority enabled.
func AllPriorities() PriorityFilter {
	f := make(PriorityFilter, len(Priorities))
	for _, p := range Priorities {
		f[p] = true
	}
	return f
}

// BroadcastAlert is a one-to-many priority-tagged announcement visible to
// users whose role is in its target-role set. TargetRoles is never empty for
// alerts accepted by the composer.
type BroadcastAlert struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Priority    AlertPriority   `json:"priority"`
	Timestamp   time.Time       `json:"timestamp"`
	SenderID    string          `json:"sender_id"`
	SenderName  LocalizedString `json:"sender_name"`
	TargetRoles []UserRole      `json:"target_roles"`
}

// VisibleTo reports whether a viewer with the given role and priority filter
// sees this alert.
func (a *BroadcastAlert) VisibleTo(role UserRole, filter PriorityFilter) bool {
	if !filter[a.Priority] {
		return false
	}
	for _, r := range a.TargetRoles {
		if r == role {
			return true
		}
	}
	return false
}
