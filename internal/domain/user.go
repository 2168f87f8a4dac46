package domain

import (
	"context"
	"time"
)

// User represents a registered student account. Authentication is by a
// numeric PIN; only the bcrypt hash is ever stored.
type User struct {
	ID        int64
	Email     string
	Name      string
	PinHash   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultName is assigned when registration omits a display name.
const DefaultName = "User"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
