package model

import "time"

// User is both the account and the profile row.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatar_url"`
	AvatarPath   string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
