package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	// Workspaces holds workspace ids in the order the user created or
	// joined them.
	Workspaces []string `json:"workspaces"`
}

// PublicUser is the API representation of a user, without the password hash.
type PublicUser struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	Workspaces []string  `json:"workspaces"`
}

func (u *User) Public() *PublicUser {
	workspaces := u.Workspaces
	if workspaces == nil {
		workspaces = []string{}
	}
	return &PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		CreatedAt:  u.CreatedAt,
		Workspaces: workspaces,
	}
}
