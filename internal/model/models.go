package model

import (
	"time"

	"github.com/google/uuid"
)

type ID = uuid.UUID

type User struct {
	ID        ID        `json:"_id" db:"id"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`

	Username string `json:"username" db:"username"`
	Count    int    `json:"count" db:"exercise_count"`

	// Log is populated from the exercises table on demand.
	Log []Exercise `json:"log" db:"-"`
}

type Exercise struct {
	ID        ID        `json:"-" db:"id"`
	CreatedAt time.Time `json:"-" db:"created_at"`

	Description string `json:"description" db:"description"`
	Duration    int    `json:"duration" db:"duration"`
	Date        Date   `json:"date" db:"exercised_at"`

	User ID `json:"-" db:"user_id"`
}
