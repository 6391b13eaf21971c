package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/eac85/gava-wrapped/internal/domain"
	"github.com/eac85/gava-wrapped/internal/store"
)

// listColumns is the ordered list of columns selected in list queries.
// Must match the scan order in scanList.
const listColumns = `id, owner_id, name, created_at`

// scanList scans a row into a domain.List. A NULL name becomes
// domain.DefaultListName.
func scanList(scanner interface{ Scan(dest ...any) error }) (*domain.List, error) {
	var l domain.List

	var (
		name      sql.NullString
		createdAt string
	)

	err := scanner.Scan(
		&l.ID,
		&l.OwnerID,
		&name,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if name.Valid && name.String != "" {
		l.Name = name.String
	} else {
		l.Name = domain.DefaultListName
	}

	l.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// listItemColumns is the ordered list of columns selected in list item queries.
// Must match the scan order in scanListItem.
const listItemColumns = `id, list_id, title, price, thumbnail_url, suggested_by, created_at`

// scanListItem scans a row into a domain.ListItem. The raw price text
// goes through domain.ParsePrice.
func scanListItem(scanner interface{ Scan(dest ...any) error }) (*domain.ListItem, error) {
	var li domain.ListItem

	var (
		price       sql.NullString
		thumbnail   sql.NullString
		suggestedBy sql.NullString
		createdAt   string
	)

	err := scanner.Scan(
		&li.ID,
		&li.ListID,
		&li.Title,
		&price,
		&thumbnail,
		&suggestedBy,
		&createdAt,
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
	if suggestedBy.Valid {
		li.SuggestedBy = suggestedBy.String
	}

	li.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &li, nil
}

// CreateList inserts a new list. An empty name is stored as NULL so the
// "Unnamed List" default applies on read.
func (s *Store) CreateList(ctx context.Context, l *domain.List) error {
	name := nullString(l.Name)
	if l.Name == domain.DefaultListName {
		name = sql.NullString{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lists (id, owner_id, name, created_at)
		VALUES (?, ?, ?, ?)`,
		l.ID,
		l.OwnerID,
		name,
		formatTime(l.CreatedAt),
	)
	return err
}

// CreateListItem inserts a new list item.
func (s *Store) CreateListItem(ctx context.Context, item *domain.ListItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO list_items (id, list_id, title, price, thumbnail_url, suggested_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.ListID,
		item.Title,
		formatPrice(item.Price),
		nullString(item.ThumbnailURL),
		nullString(item.SuggestedBy),
		formatTime(item.CreatedAt),
	)
	return err
}

// GetLists retrieves lists owned by a profile, ordered by creation time
// then id. A nil window returns all lists regardless of creation year.
func (s *Store) GetLists(ctx context.Context, ownerID string, w *domain.Window) ([]*domain.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE owner_id = ?`
	args := []any{ownerID}

	if w != nil {
		endOp := "<="
		if w.ExclusiveEnd {
			endOp = "<"
		}
		query += fmt.Sprintf(` AND created_at >= ? AND created_at %s ?`, endOp)
		args = append(args, formatTime(w.Start), formatTime(w.End))
	}

	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// GetListItemsByLists retrieves items belonging to any of the given
// lists, narrowed by the filter, ordered by creation time then id. An
// empty id set yields an empty slice without touching the database.
func (s *Store) GetListItemsByLists(ctx context.Context, listIDs []string, filter store.ListItemFilter) ([]*domain.ListItem, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(listIDs))
	args := make([]any, len(listIDs))
	for i, listID := range listIDs {
		placeholders[i] = "?"
		args[i] = listID
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM list_items WHERE list_id IN (%s)`,
		listItemColumns, strings.Join(placeholders, ","))

	if filter.ExcludeSuggested {
		sb.WriteString(` AND suggested_by IS NULL`)
	}
	if filter.OnlySuggested {
		sb.WriteString(` AND suggested_by IS NOT NULL`)
	}
	if filter.Window != nil {
		endOp := "<="
		if filter.Window.ExclusiveEnd {
			endOp = "<"
		}
		fmt.Fprintf(&sb, ` AND created_at >= ? AND created_at %s ?`, endOp)
		args = append(args, formatTime(filter.Window.Start), formatTime(filter.Window.End))
	}
	if filter.OnDay != nil {
		day := domain.DayWindow(*filter.OnDay)
		sb.WriteString(` AND created_at >= ? AND created_at <= ?`)
		args = append(args, formatTime(day.Start), formatTime(day.End))
	}

	sb.WriteString(` ORDER BY created_at, id`)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.ListItem
	for rows.Next() {
		li, err := scanListItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}
