package sqlite

import (
	"context"
	"fmt"
	"strings"

	"database/sql"

	"github.com/eac85/gava-wrapped/internal/domain"
)

// purchaseColumns is the ordered list of columns selected in purchase queries.
// Must match the scan order in scanPurchase.
const purchaseColumns = `id, profile_id, created_at`

// scanPurchase scans a sql.Row (or sql.Rows via its Scan method) into a domain.Purchase.
func scanPurchase(scanner interface{ Scan(dest ...any) error }) (*domain.Purchase, error) {
	var p domain.Purchase

	var createdAt string

	err := scanner.Scan(
		&p.ID,
		&p.ProfileID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// lineItemColumns is the ordered list of columns selected in line item queries.
// Must match the scan order in scanLineItem.
const lineItemColumns = `id, purchase_id, title, price, thumbnail_url`

// scanLineItem scans a row into a domain.LineItem. The raw price text
// goes through domain.ParsePrice so non-numeric values become 0 instead
// of failing the computation.
func scanLineItem(scanner interface{ Scan(dest ...any) error }) (*domain.LineItem, error) {
	var li domain.LineItem

	var (
		price     sql.NullString
		thumbnail sql.NullString
	)

	err := scanner.Scan(
		&li.ID,
		&li.PurchaseID,
		&li.Title,
		&price,
		&thumbnail,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		li.Price = domain.ParsePrice(price.String)
	}
	if thumbnail.Valid {
		li.ThumbnailURL = thumbnail.String
	}

	return &li, nil
}

// CreatePurchase inserts a new purchase.
func (s *Store) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO purchases (id, profile_id, created_at)
		VALUES (?, ?, ?)`,
		p.ID,
		p.ProfileID,
		formatTime(p.CreatedAt),
	)
	return err
}

// CreateLineItem inserts a new line item.
func (s *Store) CreateLineItem(ctx context.Context, item *domain.LineItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO line_items (id, purchase_id, title, price, thumbnail_url)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID,
		item.PurchaseID,
		item.Title,
		formatPrice(item.Price),
		nullString(item.ThumbnailURL),
	)
	return err
}

// GetPurchases retrieves purchases made by a profile inside the window,
// ordered by creation time then id for reproducible reductions.
func (s *Store) GetPurchases(ctx context.Context, profileID string, w domain.Window) ([]*domain.Purchase, error) {
	endOp := "<="
	if w.ExclusiveEnd {
		endOp = "<"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM purchases
		WHERE profile_id = ? AND created_at >= ? AND created_at %s ?
		ORDER BY created_at, id`,
		purchaseColumns, endOp)

	rows, err := s.db.QueryContext(ctx, query, profileID, formatTime(w.Start), formatTime(w.End))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// GetLineItemsByPurchases retrieves line items belonging to any of the
// given purchases, ordered by id. An empty id set yields an empty slice
// without touching the database.
func (s *Store) GetLineItemsByPurchases(ctx context.Context, purchaseIDs []string) ([]*domain.LineItem, error) {
	if len(purchaseIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(purchaseIDs))
	args := make([]any, len(purchaseIDs))
	for i, id := range purchaseIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT %s FROM line_items
		WHERE purchase_id IN (%s)
		ORDER BY id`,
		lineItemColumns,
		strings.Join(placeholders, ","),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.LineItem
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}
