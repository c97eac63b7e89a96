package models

import (
	"time"
)

// User represents a registered end-user and their credit balance
type User struct {
	ID          string    `json:"user_id" db:"user_id"`
	FirebaseUID string    `json:"-" db:"firebase_uid"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Credits     int       `json:"credits" db:"credits"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload of POST /auth/register
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	FirebaseUID string `json:"firebase_uid"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Credits int    `json:"credits"`
}

// UserMirror is the copy of user state written to the identity-linked mirror
type UserMirror struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Credits   int       `json:"credits"`
	UpdatedAt time.Time `json:"updated_at"`
}
