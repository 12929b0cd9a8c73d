package domain

import "time"

// User represents an application user. Accounts reference users by ID; the
// ledger only ever resolves a user to confirm existence.
type User struct {
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
