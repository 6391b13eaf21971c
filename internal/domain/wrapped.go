package domain

import "time"

// The Wrapped output shapes are a durable external contract: front-end
// consumers depend on exact field names and null-vs-zero conventions.
// Statistics not yet derivable by an implemented reducer are populated
// with explicit typed zero/empty defaults, never null, except the
// fields declared as pointers below.

// MostExpensiveGift is the single highest-priced purchased item.
type MostExpensiveGift struct {
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

// PurchaseTiming splits purchases into timing buckets. Only the
// last-minute bucket is computed today.
type PurchaseTiming struct {
	EarlyBird  int `json:"earlyBird"`
	OnTime     int `json:"onTime"`
	LastMinute int `json:"lastMinute"`
}

// WrappedStats is the flat statistics block of the annual report.
type WrappedStats struct {
	TotalGiftsGiven     int                `json:"totalGiftsGiven"`
	TotalGiftsReceived  int                `json:"totalGiftsReceived"`
	MostExpensiveGift   *MostExpensiveGift `json:"mostExpensiveGift"`
	TotalSpending       float64            `json:"totalSpending"`
	PeopleExchangedWith int                `json:"peopleExchangedWith"`
	MostPopularCategory string             `json:"mostPopularCategory"`
	GiftGivingStreak    int                `json:"giftGivingStreak"`
	SantaScore          int                `json:"santaScore"`
	LastMinutePurchases int                `json:"lastMinutePurchases"`
	MostUsedRetailer    string             `json:"mostUsedRetailer"`
	HomemadeGifts       int                `json:"homemadeGifts"`
	PurchaseTiming      PurchaseTiming     `json:"purchaseTiming"`
}

// ListWithMostItems identifies the owned list that accumulated the most items.
type ListWithMostItems struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
}

// MostActiveDayItem is a list item counted toward the most active day.
type MostActiveDayItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"createdAt"`
}

// MostActiveDay reports the calendar day on which the profile added the
// most items to its own lists.
type MostActiveDay struct {
	Date      string              `json:"date"` // YYYY-MM-DD, UTC day key
	Datetime  time.Time           `json:"datetime"`
	ItemCount int                 `json:"itemCount"`
	Items     []MostActiveDayItem `json:"items"`
}

// SuggestedGiftCount is one entry of the suggestion tally.
type SuggestedGiftCount struct {
	SuggestedBy string `json:"suggested_by"`
	Count       int    `json:"count"`
	Name        string `json:"name"`
}

// WrappedListStats is the extended list-activity block of the report.
type WrappedListStats struct {
	TotalListsCreated   int                  `json:"totalListsCreated"`
	ListWithMostItems   *ListWithMostItems   `json:"listWithMostItems"`
	MostActiveDay       *MostActiveDay       `json:"mostActiveDay"`
	SuggestedGiftCounts []SuggestedGiftCount `json:"suggestedGiftCounts"`
}

// WrappedData is the annual wrapped report returned to the caller.
type WrappedData struct {
	ProfileID         string           `json:"profileId"`
	Year              int              `json:"year"`
	Stats             WrappedStats     `json:"stats"`
	PersonalityType   string           `json:"personalityType"`
	PersonalityReason string           `json:"personalityReason"`
	ListStats         WrappedListStats `json:"listStats"`
}

// NewWrappedData returns a report pre-filled with the documented
// defaults so every field serializes even when a reducer degrades to
// its empty output.
func NewWrappedData(profileID string, year int) *WrappedData {
	return &WrappedData{
		ProfileID: profileID,
		Year:      year,
		ListStats: WrappedListStats{
			SuggestedGiftCounts: []SuggestedGiftCount{},
		},
	}
}
