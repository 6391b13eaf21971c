// Package domain defines the core entities and aggregation outputs for the Gava Wrapped server.
package domain

import (
	"strings"
	"time"
)

// UnknownSuggesterName is the placeholder used when a suggester id
// cannot be resolved to a profile.
const UnknownSuggesterName = "Unknown"

// Profile represents a user/account in the gift-exchange platform.
type Profile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName joins the name parts for presentation.
// A profile with no name parts displays as UnknownSuggesterName.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return UnknownSuggesterName
	}
	return name
}
