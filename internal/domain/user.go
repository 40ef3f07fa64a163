package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the projection exposed on unauthenticated endpoints.
// No email or account status.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdate carries the self-service profile mutation. Nil means
// "leave the field alone", so a client can update one name without
// clobbering the other.
type ProfileUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// CanModify decides whether caller may mutate the target user. Today that
// is plain self-ownership; a role model would extend this predicate rather
// than the handlers.
func CanModify(callerID, targetID int64) bool {
	return callerID == targetID
}

func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetActiveByID returns the user only when is_active is true.
	GetActiveByID(ctx context.Context, id int64) (*User, error)
	FetchActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, id int64) error
}

type UserUsecase interface {
	ListActive(ctx context.Context) ([]PublicUser, error)
	GetPublic(ctx context.Context, id int64) (*PublicUser, error)
	UpdateProfile(ctx context.Context, callerID, id int64, upd *ProfileUpdate) (*User, error)
	Deactivate(ctx context.Context, callerID, id int64) error
}
