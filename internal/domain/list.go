package domain

import "time"

// DefaultListName is substituted for lists stored without a name.
const DefaultListName = "Unnamed List"

// List is a gift wish-list owned by a profile.
type List struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListItem is an entry in a list. SuggestedBy is empty when the item
// was added by the list owner, and holds the suggesting profile's id
// when another profile suggested it for the owner.
type ListItem struct {
	ID           string    `json:"id"`
	ListID       string    `json:"list_id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	SuggestedBy  string    `json:"suggested_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Suggested reports whether the item was suggested by another profile
// rather than added by the list owner.
func (li *ListItem) Suggested() bool {
	return li.SuggestedBy != ""
}
