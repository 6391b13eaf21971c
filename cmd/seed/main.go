// Package main provides a tool to seed the database with test gifting data.
//
// It creates a handful of profiles, a year of purchases and wish lists,
// and enough suggested items to exercise the wrapped report end to end.
//
// Usage:
//
//	DATABASE_PATH=~/GavaWrapped/gava.db go run ./cmd/seed
//	DATABASE_PATH=~/GavaWrapped/gava.db go run ./cmd/seed --year 2023
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/id"
	"github.com/eac85/gava-wrapped/internal/store/sqlite"
)

var (
	seedYear = flag.Int("year", time.Now().UTC().Year(), "Calendar year to seed data into")
	profiles = flag.Int("profiles", 5, "Number of profiles to create")
)

var giftTitles = []string{
	"Wool Socks", "Coffee Grinder", "Puzzle Set", "Desk Lamp", "Cookbook",
	"Board Game", "Scented Candle", "Travel Mug", "Photo Frame", "Headphones",
	"Plant Pot", "Notebook", "Chess Set", "Tea Sampler", "Blanket",
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dbPath = filepath.Join(home, "GavaWrapped", "gava.db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	s, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := make([]*domain.Profile, 0, *profiles)
	for n := 0; n < *profiles; n++ {
		p := &domain.Profile{
			ID:        id.MustGenerate(id.PrefixProfile),
			FirstName: fmt.Sprintf("Member%d", n+1),
			LastName:  "Test",
			Email:     fmt.Sprintf("member%d@example.com", n+1),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.CreateProfile(ctx, p); err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
		created = append(created, p)
		fmt.Printf("Created profile %s (%s)\n", p.DisplayName(), p.ID)
	}

	for _, p := range created {
		seedPurchases(ctx, s, rng, p)
		seedLists(ctx, s, rng, p, created)
	}

	fmt.Println("Seeding complete.")
}

// seedPurchases spreads a few purchases across the year, with extras in
// the late-December rush so the last-minute counter has data.
func seedPurchases(ctx context.Context, s *sqlite.Store, rng *rand.Rand, p *domain.Profile) {
	count := 3 + rng.Intn(5)
	for n := 0; n < count; n++ {
		var at time.Time
		if n%3 == 0 {
			day := 18 + rng.Intn(8)
			at = time.Date(*seedYear, time.December, day, rng.Intn(24), rng.Intn(60), 0, 0, time.UTC)
		} else {
			at = time.Date(*seedYear, time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
				rng.Intn(24), rng.Intn(60), 0, 0, time.UTC)
		}

		purchase := &domain.Purchase{
			ID:        id.MustGenerate(id.PrefixPurchase),
			ProfileID: p.ID,
			CreatedAt: at,
		}
		if err := s.CreatePurchase(ctx, purchase); err != nil {
			log.Fatalf("Failed to create purchase: %v", err)
		}

		items := 1 + rng.Intn(3)
		for j := 0; j < items; j++ {
			item := &domain.LineItem{
				ID:         id.MustGenerate(id.PrefixLineItem),
				PurchaseID: purchase.ID,
				Title:      giftTitles[rng.Intn(len(giftTitles))],
				Price:      float64(5+rng.Intn(95)) + 0.99,
			}
			if err := s.CreateLineItem(ctx, item); err != nil {
				log.Fatalf("Failed to create line item: %v", err)
			}
		}
	}
	fmt.Printf("  %s: %d purchases\n", p.ID, count)
}

// seedLists creates a couple of wish lists per profile, with some items
// suggested by the other seeded profiles.
func seedLists(ctx context.Context, s *sqlite.Store, rng *rand.Rand, p *domain.Profile, all []*domain.Profile) {
	count := 1 + rng.Intn(3)
	for n := 0; n < count; n++ {
		list := &domain.List{
			ID:      id.MustGenerate(id.PrefixList),
			OwnerID: p.ID,
			Name:    fmt.Sprintf("%s's List %d", p.FirstName, n+1),
			CreatedAt: time.Date(*seedYear, time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
				rng.Intn(24), 0, 0, 0, time.UTC),
		}
		if err := s.CreateList(ctx, list); err != nil {
			log.Fatalf("Failed to create list: %v", err)
		}

		items := 2 + rng.Intn(6)
		for j := 0; j < items; j++ {
			item := &domain.ListItem{
				ID:     id.MustGenerate(id.PrefixListItem),
				ListID: list.ID,
				Title:  giftTitles[rng.Intn(len(giftTitles))],
				Price:  float64(5+rng.Intn(95)) + 0.99,
				CreatedAt: list.CreatedAt.Add(
					time.Duration(rng.Intn(72)) * time.Hour),
			}
			// Roughly a quarter of items come from another member.
			if rng.Intn(4) == 0 {
				other := all[rng.Intn(len(all))]
				if other.ID != p.ID {
					item.SuggestedBy = other.ID
				}
			}
			if err := s.CreateListItem(ctx, item); err != nil {
				log.Fatalf("Failed to create list item: %v", err)
			}
		}
	}
	fmt.Printf("  %s: %d lists\n", p.ID, count)
}
