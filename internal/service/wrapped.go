package service

import (
	"context"
	"slices"
	"time"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/errors"
	"github.com/eac85/gava-wrapped/internal/logger"
	"github.com/eac85/gava-wrapped/internal/store"
	"github.com/eac85/gava-wrapped/internal/validation"
)

// WrappedService builds the year-in-review report for a profile.
type WrappedService struct {
	store     store.Store
	validator *validation.Validator
	log       *logger.Logger
}

// NewWrappedService creates a new wrapped service.
func NewWrappedService(store store.Store, validator *validation.Validator, log *logger.Logger) *WrappedService {
	return &WrappedService{
		store:     store,
		validator: validator,
		log:       log,
	}
}

// WrappedRequest identifies the profile and report year. A zero Year
// means the current calendar year.
type WrappedRequest struct {
	ProfileID string `json:"profile_id" validate:"required"`
	Year      int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
}

// ComputeWrapped assembles the full report. A missing profile or a
// failure to load the profile's purchases is fatal; every other
// section degrades to its empty default and the failure is logged.
func (s *WrappedService) ComputeWrapped(ctx context.Context, req WrappedRequest) (*domain.WrappedData, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	fullYear := domain.YearWindow(year)
	lastMinute := domain.LastMinuteWindow(year)

	if _, err := s.store.GetProfile(ctx, req.ProfileID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFoundf("profile %s not found", req.ProfileID)
		}
		return nil, errors.Wrapf(err, errors.CodeFetchFailed, "fetching profile %s", req.ProfileID)
	}

	log := s.log.WithField("profile_id", req.ProfileID)
	log.Info("computing wrapped report", "year", year)

	data := domain.NewWrappedData(req.ProfileID, year)

	spend, err := s.reduceSpending(ctx, req.ProfileID, fullYear)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeFetchFailed, "loading purchases for %s", req.ProfileID)
	}
	data.Stats.TotalGiftsGiven = spend.itemsBought
	data.Stats.TotalSpending = spend.totalSpent
	data.Stats.MostExpensiveGift = spend.mostExpensive

	if n, err := s.countLastMinute(ctx, req.ProfileID, lastMinute); err != nil {
		log.WithError(err).Warn("last-minute count unavailable, defaulting to zero")
	} else {
		data.Stats.LastMinutePurchases = n
		data.Stats.PurchaseTiming.LastMinute = n
	}

	if totalLists, top, err := s.reduceListStats(ctx, req.ProfileID, fullYear); err != nil {
		log.WithError(err).Warn("list stats unavailable, defaulting to empty")
	} else {
		data.ListStats.TotalListsCreated = totalLists
		data.ListStats.ListWithMostItems = top
	}

	// The active-day and suggestion sections share the profile's full
	// list set, deliberately not restricted to the report year.
	allLists, err := s.store.GetLists(ctx, req.ProfileID, nil)
	if err != nil {
		log.WithError(err).Warn("list fetch failed, skipping active day and suggestions")
		return data, nil
	}

	if day, err := s.findMostActiveDay(ctx, allLists, fullYear); err != nil {
		log.WithError(err).Warn("most active day unavailable")
	} else {
		data.ListStats.MostActiveDay = day
	}

	if tally, err := s.tallySuggestions(ctx, allLists, fullYear); err != nil {
		log.WithError(err).Warn("suggestion tally unavailable, defaulting to empty")
	} else {
		data.ListStats.SuggestedGiftCounts = tally
	}

	return data, nil
}

type spendSummary struct {
	itemsBought   int
	totalSpent    float64
	mostExpensive *domain.MostExpensiveGift
}

// reduceSpending walks every line item from the year's purchases in a
// single pass, accumulating the count, the spend total, and the
// priciest item. The first item seen wins a price tie because later
// items must be strictly greater to displace it.
func (s *WrappedService) reduceSpending(ctx context.Context, profileID string, w domain.Window) (spendSummary, error) {
	var out spendSummary

	purchases, err := s.store.GetPurchases(ctx, profileID, w)
	if err != nil {
		return out, err
	}
	if len(purchases) == 0 {
		return out, nil
	}

	ids := make([]string, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
	}
	items, err := s.store.GetLineItemsByPurchases(ctx, ids)
	if err != nil {
		return out, err
	}

	for _, item := range items {
		out.itemsBought++
		out.totalSpent += item.Price
		if out.mostExpensive == nil || item.Price > out.mostExpensive.Price {
			out.mostExpensive = &domain.MostExpensiveGift{
				Title:     item.Title,
				Price:     item.Price,
				Thumbnail: item.ThumbnailURL,
			}
		}
	}
	return out, nil
}

// countLastMinute counts line items bought inside the last-minute
// window. No purchases in the window means no second query.
func (s *WrappedService) countLastMinute(ctx context.Context, profileID string, w domain.Window) (int, error) {
	purchases, err := s.store.GetPurchases(ctx, profileID, w)
	if err != nil {
		return 0, err
	}
	if len(purchases) == 0 {
		return 0, nil
	}

	ids := make([]string, len(purchases))
	for i, p := range purchases {
		ids[i] = p.ID
	}
	items, err := s.store.GetLineItemsByPurchases(ctx, ids)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// reduceListStats counts lists created in the window and finds the
// one holding the most items. Items are counted across the list's
// whole lifetime, not just the report year.
func (s *WrappedService) reduceListStats(ctx context.Context, profileID string, w domain.Window) (int, *domain.ListWithMostItems, error) {
	lists, err := s.store.GetLists(ctx, profileID, &w)
	if err != nil {
		return 0, nil, err
	}
	if len(lists) == 0 {
		return 0, nil, nil
	}

	ids := make([]string, len(lists))
	byID := make(map[string]*domain.List, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
		byID[l.ID] = l
	}

	items, err := s.store.GetListItemsByLists(ctx, ids, store.ListItemFilter{})
	if err != nil {
		return 0, nil, err
	}

	counts := make(map[string]int, len(lists))
	var order []string
	for _, item := range items {
		if counts[item.ListID] == 0 {
			order = append(order, item.ListID)
		}
		counts[item.ListID]++
	}

	var top *domain.ListWithMostItems
	for _, id := range order {
		if top == nil || counts[id] > top.ItemCount {
			top = &domain.ListWithMostItems{
				ID:        id,
				Name:      byID[id].Name,
				ItemCount: counts[id],
			}
		}
	}
	return len(lists), top, nil
}

// findMostActiveDay groups the year's unsuggested list items by UTC
// calendar day and returns the busiest one. A day must be strictly
// busier to displace an earlier one, so the first day encountered in
// creation order wins ties.
func (s *WrappedService) findMostActiveDay(ctx context.Context, lists []*domain.List, w domain.Window) (*domain.MostActiveDay, error) {
	if len(lists) == 0 {
		return nil, nil
	}

	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}

	items, err := s.store.GetListItemsByLists(ctx, ids, store.ListItemFilter{
		Window:           &w,
		ExcludeSuggested: true,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	counts := make(map[string]int, len(items))
	firstSeen := make(map[string]time.Time, len(items))
	var order []string
	for _, item := range items {
		key := item.CreatedAt.UTC().Format("2006-01-02")
		if counts[key] == 0 {
			order = append(order, key)
			firstSeen[key] = item.CreatedAt.UTC()
		}
		counts[key]++
	}

	var winner string
	for _, key := range order {
		if winner == "" || counts[key] > counts[winner] {
			winner = key
		}
	}

	day := firstSeen[winner]
	dayItems, err := s.store.GetListItemsByLists(ctx, ids, store.ListItemFilter{
		Window:           &w,
		ExcludeSuggested: true,
		OnDay:            &day,
	})
	if err != nil {
		return nil, err
	}

	out := &domain.MostActiveDay{
		Date:      winner,
		Datetime:  day,
		ItemCount: counts[winner],
		Items:     make([]domain.MostActiveDayItem, 0, len(dayItems)),
	}
	for _, item := range dayItems {
		out.Items = append(out.Items, domain.MostActiveDayItem{
			ID:        item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Thumbnail: item.ThumbnailURL,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}

// tallySuggestions counts the year's suggested items on the profile's
// lists per suggester, most prolific first. Suggesters whose profile
// no longer resolves keep their slot under a placeholder name.
func (s *WrappedService) tallySuggestions(ctx context.Context, lists []*domain.List, w domain.Window) ([]domain.SuggestedGiftCount, error) {
	tally := []domain.SuggestedGiftCount{}
	if len(lists) == 0 {
		return tally, nil
	}

	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}

	items, err := s.store.GetListItemsByLists(ctx, ids, store.ListItemFilter{
		Window:        &w,
		OnlySuggested: true,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return tally, nil
	}

	counts := make(map[string]int, len(items))
	var suggesters []string
	for _, item := range items {
		if counts[item.SuggestedBy] == 0 {
			suggesters = append(suggesters, item.SuggestedBy)
		}
		counts[item.SuggestedBy]++
	}

	profiles, err := s.store.GetProfilesByIDs(ctx, suggesters)
	if err != nil {
		return nil, err
	}

	for _, id := range suggesters {
		name := domain.UnknownSuggesterName
		if p, ok := profiles[id]; ok {
			name = p.DisplayName()
		}
		tally = append(tally, domain.SuggestedGiftCount{
			SuggestedBy: id,
			Count:       counts[id],
			Name:        name,
		})
	}

	// Stable sort keeps the encounter order among equal counts.
	slices.SortStableFunc(tally, func(a, b domain.SuggestedGiftCount) int {
		return b.Count - a.Count
	})
	return tally, nil
}
