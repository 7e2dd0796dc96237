package issue

import (
	"fmt"
	"strings"
	"time"

	"tracker/internal/shared/biztime"
)

// Label has an independent lifecycle: it is never owned by an issue, and
// its name is globally unique. Labels are created implicitly through the
// get-or-create path during label replacement.
type Label struct {
	id          uint
	name        string
	color       *string
	description *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLabel(name string) (*Label, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("label name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("label name exceeds maximum length of 100 characters")
	}

	now := biztime.NowUTC()
	return &Label{
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructLabel(
	id uint,
	name string,
	color *string,
	description *string,
	createdAt, updatedAt time.Time,
) (*Label, error) {
	if id == 0 {
		return nil, fmt.Errorf("label ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("label name is required")
	}

	return &Label{
		id:          id,
		name:        name,
		color:       color,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (l *Label) ID() uint {
	return l.id
}

func (l *Label) Name() string {
	return l.name
}

func (l *Label) Color() *string {
	return l.color
}

func (l *Label) Description() *string {
	return l.description
}

func (l *Label) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Label) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Label) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("label ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("label ID cannot be zero")
	}
	l.id = id
	return nil
}
