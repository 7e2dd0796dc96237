package valueobjects

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is the named defaulting policy: an absent priority on
// create or import resolves to medium.
const DefaultPriority = PriorityMedium

var validPriorities = map[Priority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

// ParsePriority parses a priority string case-insensitively.
func ParsePriority(s string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return priority, nil
}

// ParsePriorityOrDefault parses a priority string, resolving the empty
// string to DefaultPriority. A non-empty unparsable value is still an error.
func ParsePriorityOrDefault(s string) (Priority, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultPriority, nil
	}
	return ParsePriority(s)
}
