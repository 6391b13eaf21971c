package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/errors"
	"github.com/eac85/gava-wrapped/internal/store"
	"github.com/eac85/gava-wrapped/internal/store/sqlite"
	"github.com/eac85/gava-wrapped/internal/validation"
)

var errStoreDown = fmt.Errorf("store offline")

// flaky makes a store method fail from a given 1-based call number on.
// Zero means the method never fails.
type flaky struct {
	calls int
	from  int
}

func (f *flaky) next() error {
	f.calls++
	if f.from > 0 && f.calls >= f.from {
		return errStoreDown
	}
	return nil
}

// failingStore wraps a real store and injects read failures per method,
// so the report's degradation behavior can be exercised against
// otherwise valid data.
type failingStore struct {
	store.Store
	profile   flaky
	purchases flaky
	lists     flaky
	listItems flaky
	profiles  flaky
}

func (fs *failingStore) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if err := fs.profile.next(); err != nil {
		return nil, err
	}
	return fs.Store.GetProfile(ctx, id)
}

func (fs *failingStore) GetPurchases(ctx context.Context, profileID string, w domain.Window) ([]*domain.Purchase, error) {
	if err := fs.purchases.next(); err != nil {
		return nil, err
	}
	return fs.Store.GetPurchases(ctx, profileID, w)
}

func (fs *failingStore) GetLists(ctx context.Context, ownerID string, w *domain.Window) ([]*domain.List, error) {
	if err := fs.lists.next(); err != nil {
		return nil, err
	}
	return fs.Store.GetLists(ctx, ownerID, w)
}

func (fs *failingStore) GetListItemsByLists(ctx context.Context, listIDs []string, filter store.ListItemFilter) ([]*domain.ListItem, error) {
	if err := fs.listItems.next(); err != nil {
		return nil, err
	}
	return fs.Store.GetListItemsByLists(ctx, listIDs, filter)
}

func (fs *failingStore) GetProfilesByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error) {
	if err := fs.profiles.next(); err != nil {
		return nil, err
	}
	return fs.Store.GetProfilesByIDs(ctx, ids)
}

// setupFailingTest returns a wrapped service reading through the fake
// plus the underlying sqlite store for seeding.
func setupFailingTest(t *testing.T) (*WrappedService, *failingStore, *sqlite.Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	log := testLogger()
	s, err := sqlite.Open(dbPath, log.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	fs := &failingStore{Store: s}
	return NewWrappedService(fs, validation.New(), log), fs, s
}

func TestComputeWrapped_ProfileFetchFailureIsFatal(t *testing.T) {
	svc, fs, _ := setupFailingTest(t)
	fs.profile.from = 1

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-lena", Year: 2024})
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, errors.ErrFetchFailed))
}

func TestComputeWrapped_PurchaseFetchFailureIsFatal(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-milo", "Milo", "")
	fs.purchases.from = 1

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-milo", Year: 2024})
	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, errors.ErrFetchFailed))
}

func TestComputeWrapped_LastMinuteCountDegradesToZero(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-nora", "Nora", "")
	createTestPurchase(t, s, "pur-lm", "prf-nora",
		time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC), 40)

	// The spending pass reads purchases once; the second read backs
	// the last-minute count and fails.
	fs.purchases.from = 2

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-nora", Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, 1, data.Stats.TotalGiftsGiven)
	assert.Equal(t, 40.0, data.Stats.TotalSpending)
	assert.Equal(t, 0, data.Stats.LastMinutePurchases)
	assert.Equal(t, 0, data.Stats.PurchaseTiming.LastMinute)
}

func TestComputeWrapped_ListFetchFailureDegradesAllListSections(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-otto", "Otto", "")
	createTestPurchase(t, s, "pur-ok", "prf-otto",
		time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC), 15)
	createTestList(t, s, "lst-x", "prf-otto", "Camping",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-x1", "lst-x", "Tent", "",
		time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC))

	fs.lists.from = 1

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-otto", Year: 2024})
	require.NoError(t, err)

	// Spending survives untouched.
	assert.Equal(t, 1, data.Stats.TotalGiftsGiven)
	assert.Equal(t, 15.0, data.Stats.TotalSpending)

	// Everything list-derived falls back to its empty default.
	assert.Equal(t, 0, data.ListStats.TotalListsCreated)
	assert.Nil(t, data.ListStats.ListWithMostItems)
	assert.Nil(t, data.ListStats.MostActiveDay)
	assert.NotNil(t, data.ListStats.SuggestedGiftCounts)
	assert.Empty(t, data.ListStats.SuggestedGiftCounts)
}

func TestComputeWrapped_SharedListFetchFailureSkipsDependentSections(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-pia", "Pia", "")
	createTestProfile(t, s, "prf-remy", "Remy", "Reed")
	createTestList(t, s, "lst-y", "prf-pia", "Crafts",
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-y1", "lst-y", "Yarn", "",
		time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-y2", "lst-y", "Loom", "prf-remy",
		time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC))

	// The year-windowed fetch behind list stats succeeds; the shared
	// all-lists fetch fails, taking active day and suggestions with it.
	fs.lists.from = 2

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-pia", Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, 1, data.ListStats.TotalListsCreated)
	require.NotNil(t, data.ListStats.ListWithMostItems)
	assert.Equal(t, "lst-y", data.ListStats.ListWithMostItems.ID)

	assert.Nil(t, data.ListStats.MostActiveDay)
	assert.Empty(t, data.ListStats.SuggestedGiftCounts)
}

func TestComputeWrapped_ListItemFailuresDegradeIndividually(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-sara", "Sara", "")
	createTestProfile(t, s, "prf-theo", "Theo", "Thorne")
	createTestList(t, s, "lst-z", "prf-sara", "Garden",
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-z1", "lst-z", "Trowel", "",
		time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-z2", "lst-z", "Seeds", "prf-theo",
		time.Date(2024, 4, 3, 10, 0, 0, 0, time.UTC))

	// List stats read items first and keep working; the later reads
	// behind active day and suggestions fail.
	fs.listItems.from = 2

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-sara", Year: 2024})
	require.NoError(t, err)

	require.NotNil(t, data.ListStats.ListWithMostItems)
	assert.Equal(t, 2, data.ListStats.ListWithMostItems.ItemCount)
	assert.Nil(t, data.ListStats.MostActiveDay)
	assert.Empty(t, data.ListStats.SuggestedGiftCounts)
}

func TestComputeWrapped_SuggesterLookupFailureDegradesTally(t *testing.T) {
	svc, fs, s := setupFailingTest(t)

	createTestProfile(t, s, "prf-uma", "Uma", "")
	createTestProfile(t, s, "prf-vik", "Vik", "Vale")
	createTestList(t, s, "lst-w", "prf-uma", "Winter",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-w1", "lst-w", "Gloves", "",
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC))
	createTestListItem(t, s, "item-w2", "lst-w", "Hat", "prf-vik",
		time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC))

	fs.profiles.from = 1

	data, err := svc.ComputeWrapped(context.Background(), WrappedRequest{ProfileID: "prf-uma", Year: 2024})
	require.NoError(t, err)

	// The active day still computes; only the tally falls back.
	require.NotNil(t, data.ListStats.MostActiveDay)
	assert.Equal(t, "2024-01-02", data.ListStats.MostActiveDay.Date)
	assert.NotNil(t, data.ListStats.SuggestedGiftCounts)
	assert.Empty(t, data.ListStats.SuggestedGiftCounts)
}
