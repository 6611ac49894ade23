package domain

import (
	"time"
)

// Favorite links a user to a destination. A pair exists at most once.
type Favorite struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	DestinationID int64     `db:"destination_id" json:"destination_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
