package credentials

import "time"

// User is the stored account record. The hash never leaves the service:
// it is excluded from JSON and callers outside this package only see it
// through Authenticate.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
