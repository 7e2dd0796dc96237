package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Exists(ctx context.Context, userID uint) (bool, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
	// Delete removes the user after nulling out issue assignee references
	// (set-null relationship, not a cascade). Authored comments are
	// removed with the user.
	Delete(ctx context.Context, userID uint) error
}
