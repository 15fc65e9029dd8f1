package models

// Location statuses.
const (
	LocationStatusActive   = "active"
	LocationStatusInactive = "inactive"
)

// Location represents a physical store branch.
type Location struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	ZipCode          *string `json:"zipCode,omitempty"`
	Description      string  `json:"description"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	InstagramAccount *string `json:"instagramAccount,omitempty"`
	WhatsappNumber   *string `json:"whatsappNumber,omitempty"`
	// Coordinates are kept as decimal strings, matching the persisted schema.
	Latitude  *string `json:"latitude,omitempty"`
	Longitude *string `json:"longitude,omitempty"`
	Status    string  `json:"status"`
}
