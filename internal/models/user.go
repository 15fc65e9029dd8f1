package models

// User represents an admin account. There is no registration flow; users are
// created at seed time and never mutated through the API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Stored in plaintext (legacy data). Never expose this to the client.
}
