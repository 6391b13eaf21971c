package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrappedData_Defaults(t *testing.T) {
	data := NewWrappedData("prf-1", 2024)

	assert.Equal(t, "prf-1", data.ProfileID)
	assert.Equal(t, 2024, data.Year)
	assert.Nil(t, data.Stats.MostExpensiveGift)
	assert.Nil(t, data.ListStats.ListWithMostItems)
	assert.Nil(t, data.ListStats.MostActiveDay)
	assert.NotNil(t, data.ListStats.SuggestedGiftCounts)
	assert.Empty(t, data.ListStats.SuggestedGiftCounts)
}

func TestWrappedData_EmptyReportJSONContract(t *testing.T) {
	raw, err := json.Marshal(NewWrappedData("prf-1", 2024))
	require.NoError(t, err)

	s := string(raw)
	// Nullable fields serialize as null; the tally as an empty array.
	assert.Contains(t, s, `"mostExpensiveGift":null`)
	assert.Contains(t, s, `"listWithMostItems":null`)
	assert.Contains(t, s, `"mostActiveDay":null`)
	assert.Contains(t, s, `"suggestedGiftCounts":[]`)
	// Unimplemented statistics are typed zeros, never absent.
	assert.Contains(t, s, `"totalGiftsReceived":0`)
	assert.Contains(t, s, `"mostPopularCategory":""`)
	assert.Contains(t, s, `"santaScore":0`)
	assert.Contains(t, s, `"purchaseTiming":{"earlyBird":0,"onTime":0,"lastMinute":0}`)
	assert.Contains(t, s, `"personalityType":""`)
}

func TestWrappedData_RoundTrip(t *testing.T) {
	firstItem := time.Date(2024, time.December, 3, 9, 15, 0, 0, time.UTC)
	original := &WrappedData{
		ProfileID: "prf-1",
		Year:      2024,
		Stats: WrappedStats{
			TotalGiftsGiven: 7,
			MostExpensiveGift: &MostExpensiveGift{
				Title:     "Telescope",
				Price:     349.99,
				Thumbnail: "https://img.example/telescope.jpg",
			},
			TotalSpending:       612.47,
			LastMinutePurchases: 2,
			PurchaseTiming:      PurchaseTiming{LastMinute: 2},
		},
		ListStats: WrappedListStats{
			TotalListsCreated: 3,
			ListWithMostItems: &ListWithMostItems{ID: "lst-a", Name: "Family", ItemCount: 9},
			MostActiveDay: &MostActiveDay{
				Date:      "2024-12-03",
				Datetime:  firstItem,
				ItemCount: 4,
				Items: []MostActiveDayItem{
					{ID: "item-1", Title: "Socks", Price: 12, CreatedAt: firstItem},
				},
			},
			SuggestedGiftCounts: []SuggestedGiftCount{
				{SuggestedBy: "prf-q", Count: 2, Name: "Quinn Reyes"},
			},
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded WrappedData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original, &decoded)

	// The tally contract uses snake_case keys.
	assert.Contains(t, string(raw), `"suggested_by":"prf-q"`)
	assert.Contains(t, string(raw), `"name":"Quinn Reyes"`)
}
