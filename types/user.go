package types

import "time"

// User owns trips. Identity is established by the auth middleware; this
// record resolves email claims to internal IDs.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
