package queueitem

import (
	"fmt"

	"shopqueue/internal/pkg/errs"
)

// Priority represents the urgency of a queue item. It is mutable at any
// point in the lifecycle and drives retrieval order together with creation
// time: higher priority first, oldest first within a priority.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

// priorityNames holds the literal string values persisted to storage and
// exposed on the wire, declared in ascending rank order.
func priorityNames() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "LOW",
		PriorityNormal: "NORMAL",
		PriorityHigh:   "HIGH",
		PriorityUrgent: "URGENT",
	}
}

// PriorityRankAscending returns the persisted priority names from lowest to
// highest rank. Storage adapters use it to sort by rank while still
// persisting the literal names.
func PriorityRankAscending() []string {
	return []string{
		PriorityLow.String(),
		PriorityNormal.String(),
		PriorityHigh.String(),
		PriorityUrgent.String(),
	}
}

// ParsePriority converts a persisted or wire priority string into a Priority.
func ParsePriority(value string) (Priority, error) {
	for priority, name := range priorityNames() {
		if name == value {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", value))
}

// Validate checks that the Priority is one of the defined levels.
func (p Priority) Validate() error {
	if _, ok := priorityNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the literal priority name, or "UNKNOWN" for invalid values.
func (p Priority) String() string {
	if name, ok := priorityNames()[p]; ok {
		return name
	}
	return "UNKNOWN"
}
