// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account owning trackers, categories and completions.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	WeeklyDigest bool // Opt-in for the weekly summary email
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		WeeklyDigest: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
