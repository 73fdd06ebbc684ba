package models

import "time"

// User is an admin account. The public quote API is unauthenticated; users
// only exist for the admin surface.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RoleAdmin is the only role with access to the admin API.
const RoleAdmin = "admin"
