// Package store defines the persistence interface for the Gava Wrapped server.
package store

import (
	"context"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
)

// ListItemFilter narrows list-item queries. The zero value applies no
// filtering beyond the list-id set.
type ListItemFilter struct {
	// Window restricts items by creation timestamp when non-nil.
	Window *domain.Window
	// ExcludeSuggested drops items carrying a suggester id.
	ExcludeSuggested bool
	// OnlySuggested keeps only items carrying a suggester id.
	OnlySuggested bool
	// OnDay restricts items to the UTC calendar day of the given time.
	OnDay *time.Time
}

// Store defines the interface for all persistence operations.
//
// Query ordering is part of the contract: every multi-row read is
// ordered by (created_at, id) ascending so the aggregation tie-breaks
// built on "first encountered wins" are reproducible across runs.
type Store interface {
	// Lifecycle
	Close() error

	// Profiles
	CreateProfile(ctx context.Context, p *domain.Profile) error
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error)

	// Purchases
	CreatePurchase(ctx context.Context, p *domain.Purchase) error
	CreateLineItem(ctx context.Context, item *domain.LineItem) error
	GetPurchases(ctx context.Context, profileID string, w domain.Window) ([]*domain.Purchase, error)
	GetLineItemsByPurchases(ctx context.Context, purchaseIDs []string) ([]*domain.LineItem, error)

	// Lists
	CreateList(ctx context.Context, l *domain.List) error
	CreateListItem(ctx context.Context, item *domain.ListItem) error
	GetLists(ctx context.Context, ownerID string, w *domain.Window) ([]*domain.List, error)
	GetListItemsByLists(ctx context.Context, listIDs []string, filter ListItemFilter) ([]*domain.ListItem, error)
}
