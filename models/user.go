package models

import "time"

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"password,omitempty" db:"password"`
	Name         string    `json:"name" db:"name"`
	Balance      float64   `json:"balance" db:"balance"`
	AuthProvider string    `json:"auth_provider" db:"auth_provider"` // Возможные значения: "local", "google"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
