// Package user holds the admin credential records. Users are provisioned
// out of band (cmd/create-admin); there is no self-registration surface.
package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoleAdmin grants access to the gated product, media and contact
// endpoints.
const RoleAdmin = "ADMIN"

// ErrNotFound is returned when no user has the requested username.
var ErrNotFound = errors.New("user not found")

// User is a credential holder. PasswordHash is a bcrypt hash; plaintext
// passwords are never stored.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Roles        pq.StringArray
}

// HasRole reports whether the user carries the given role claim.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Repository defines the interface for user storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}
