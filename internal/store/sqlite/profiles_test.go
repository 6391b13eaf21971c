package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/store"
)

func insertTestProfile(t *testing.T, s *Store, id, first, last string) {
	t.Helper()
	err := s.CreateProfile(context.Background(), &domain.Profile{
		ID:        id,
		FirstName: first,
		LastName:  last,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateProfile(%s): %v", id, err)
	}
}

func TestCreateAndGetProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	p := &domain.Profile{
		ID:        "prf-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: now,
	}
	if err := s.CreateProfile(ctx, p); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	got, err := s.GetProfile(ctx, "prf-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.FirstName != "Ada" || got.LastName != "Lovelace" {
		t.Errorf("name: got %q %q", got.FirstName, got.LastName)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("email: got %q", got.Email)
	}
	if got.CreatedAt.Unix() != now.Unix() {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, now)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProfile(context.Background(), "prf-missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound, got %v", err)
	}
}

func TestGetProfilesByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestProfile(t, s, "prf-a", "Ada", "Lovelace")
	insertTestProfile(t, s, "prf-b", "Grace", "Hopper")

	got, err := s.GetProfilesByIDs(ctx, []string{"prf-a", "prf-b", "prf-missing"})
	if err != nil {
		t.Fatalf("GetProfilesByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(got))
	}
	if got["prf-a"].DisplayName() != "Ada Lovelace" {
		t.Errorf("prf-a display name: %q", got["prf-a"].DisplayName())
	}
	if _, ok := got["prf-missing"]; ok {
		t.Error("missing profile should be omitted from map")
	}
}

func TestGetProfilesByIDs_EmptySet(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetProfilesByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetProfilesByIDs: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %d entries", len(got))
	}
}
