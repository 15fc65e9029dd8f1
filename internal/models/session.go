package models

import "time"

// Session is a server-held record of a successful login, referenced by an
// opaque token the client carries in a cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its TTL.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
