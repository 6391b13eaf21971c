package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
)

func insertTestPurchase(t *testing.T, s *Store, id, profileID string, createdAt time.Time) {
	t.Helper()
	err := s.CreatePurchase(context.Background(), &domain.Purchase{
		ID:        id,
		ProfileID: profileID,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("CreatePurchase(%s): %v", id, err)
	}
}

func insertTestLineItem(t *testing.T, s *Store, id, purchaseID, title string, price float64) {
	t.Helper()
	err := s.CreateLineItem(context.Background(), &domain.LineItem{
		ID:         id,
		PurchaseID: purchaseID,
		Title:      title,
		Price:      price,
	})
	if err != nil {
		t.Fatalf("CreateLineItem(%s): %v", id, err)
	}
}

func TestGetPurchases_WindowBounds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPurchase(t, s, "pur-jan", "prf-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	insertTestPurchase(t, s, "pur-dec", "prf-1", time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC))
	insertTestPurchase(t, s, "pur-2023", "prf-1", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC))
	insertTestPurchase(t, s, "pur-2025", "prf-1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	insertTestPurchase(t, s, "pur-other", "prf-2", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	got, err := s.GetPurchases(ctx, "prf-1", domain.YearWindow(2024))
	if err != nil {
		t.Fatalf("GetPurchases: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(got))
	}
	// Inclusive bounds, ordered by creation time.
	if got[0].ID != "pur-jan" || got[1].ID != "pur-dec" {
		t.Errorf("got order %s, %s", got[0].ID, got[1].ID)
	}
}

func TestGetPurchases_ExclusiveEnd(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestPurchase(t, s, "pur-18", "prf-1", time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC))
	insertTestPurchase(t, s, "pur-25", "prf-1", time.Date(2024, 12, 25, 23, 59, 59, 0, time.UTC))
	insertTestPurchase(t, s, "pur-26", "prf-1", time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC))

	got, err := s.GetPurchases(ctx, "prf-1", domain.LastMinuteWindow(2024))
	if err != nil {
		t.Fatalf("GetPurchases: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 purchases inside the last-minute window, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "pur-26" {
			t.Error("Dec 26 purchase must be excluded by the exclusive end bound")
		}
	}
}

func TestGetLineItemsByPurchases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestLineItem(t, s, "li-1", "pur-a", "Socks", 12.50)
	insertTestLineItem(t, s, "li-2", "pur-a", "Mug", 8)
	insertTestLineItem(t, s, "li-3", "pur-b", "Telescope", 349.99)
	insertTestLineItem(t, s, "li-4", "pur-c", "Unrelated", 1)

	got, err := s.GetLineItemsByPurchases(ctx, []string{"pur-a", "pur-b"})
	if err != nil {
		t.Fatalf("GetLineItemsByPurchases: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	// Ordered by id.
	if got[0].ID != "li-1" || got[1].ID != "li-2" || got[2].ID != "li-3" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[2].Price != 349.99 {
		t.Errorf("price round-trip: got %v", got[2].Price)
	}
}

func TestGetLineItemsByPurchases_EmptySet(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetLineItemsByPurchases(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetLineItemsByPurchases: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
}

func TestScanLineItem_DefensivePriceParsing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Malformed and missing prices come straight from the platform's
	// ingest; they must scan as 0, not fail.
	rows := []struct {
		id    string
		price any
	}{
		{"li-bad", "$49.99"},
		{"li-words", "priceless"},
		{"li-null", nil},
		{"li-ok", "20"},
	}
	for _, r := range rows {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO line_items (id, purchase_id, title, price)
			VALUES (?, 'pur-raw', 'Gift', ?)`, r.id, r.price)
		if err != nil {
			t.Fatalf("insert %s: %v", r.id, err)
		}
	}

	got, err := s.GetLineItemsByPurchases(ctx, []string{"pur-raw"})
	if err != nil {
		t.Fatalf("GetLineItemsByPurchases: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d", len(got))
	}

	prices := make(map[string]float64)
	for _, li := range got {
		prices[li.ID] = li.Price
	}
	if prices["li-bad"] != 0 || prices["li-words"] != 0 || prices["li-null"] != 0 {
		t.Errorf("malformed prices must scan as 0: %v", prices)
	}
	if prices["li-ok"] != 20 {
		t.Errorf("valid price: got %v", prices["li-ok"])
	}
}
