package user

import (
	"fmt"
	"strings"
	"time"

	"tracker/internal/shared/biztime"
)

// User is referenced by issue assignees and comment authors. It is never
// owned by either: deleting a user nulls out assignee references instead
// of cascading into issues.
type User struct {
	id        uint
	username  string
	email     string
	fullName  *string
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(username, email string, fullName *string) (*User, error) {
	if len(strings.TrimSpace(username)) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 100 {
		return nil, fmt.Errorf("username exceeds maximum length of 100 characters")
	}
	if len(strings.TrimSpace(email)) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	now := biztime.NowUTC()
	return &User{
		username:  username,
		email:     email,
		fullName:  fullName,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email string,
	fullName *string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:        id,
		username:  username,
		email:     email,
		fullName:  fullName,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() *string {
	return u.fullName
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
