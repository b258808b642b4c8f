package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID              gocql.UUID `json:"id" db:"user_id"`
	Username        string     `json:"username" db:"username"` // email address
	Password        string     `json:"-" db:"password"`
	Role            string     `json:"role" db:"role"`
	Name            string     `json:"name" db:"name"`
	Phone           string     `json:"phone" db:"phone"`
	Address         string     `json:"address" db:"address"`
	ProfilePhotoURL string     `json:"profilePhotoUrl" db:"profile_photo_url"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// PublicUser is the shape returned to clients; it never carries the hash.
type PublicUser struct {
	ID       gocql.UUID `json:"id"`
	Username string     `json:"username"`
	Role     string     `json:"role"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone,omitempty"`
	Address  string     `json:"address,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}
