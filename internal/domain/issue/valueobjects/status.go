package valueobjects

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// DefaultStatus is the named defaulting policy: an absent status on create
// or import resolves to open.
const DefaultStatus = StatusOpen

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// ParseStatus parses a status string case-insensitively.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

// ParseStatusOrDefault parses a status string, resolving the empty string
// to DefaultStatus. A non-empty unparsable value is still an error; the
// default never masks bad input.
func ParseStatusOrDefault(s string) (Status, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultStatus, nil
	}
	return ParseStatus(s)
}
