package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleRecruiter = "recruiter"
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"` // bcrypt hash, never serialized
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Position     *string   `json:"position,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

// RegisterInput carries the registration payload into the auth usecase.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=8"`
	FullName string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required,oneof=recruiter candidate admin"`
	Position string `validate:"max=100"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, username, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

// AdminUsecase covers the admin-only surface: user listing and the
// cascading delete.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, actorID, userID int64) error
}
