package domain

import "time"

// Purchase is a checkout event by a profile. It owns one or more line
// items; it is not itself a gift list entry.
type Purchase struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LineItem is a single purchased item belonging to exactly one Purchase.
// Price is already parsed; unparseable source values arrive here as 0.
type LineItem struct {
	ID           string  `json:"id"`
	PurchaseID   string  `json:"purchase_id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
}
