package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// itemRepo implements ItemRepo with database/sql.
type itemRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const itemColumns = `id, seq, created_at, updated_at, skill, module, item_type, storage_code,
	category, confidence, reason, content, extracted, status`

func (r *itemRepo) Save(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = StatusPendingReview
	}
	if !item.Status.Valid() {
		return fmt.Errorf("save item: invalid status %q", item.Status)
	}
	if item.StorageCode == "" {
		item.StorageCode = taxonomy.StorageCodeOf(item.ItemType)
	}
	if len(item.Extracted) == 0 {
		item.Extracted = []byte("{}")
	}

	// Sequence numbers are taken before the transaction so the counter's
	// own write never waits on it.
	itemSeq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	eventSeq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	item.Sequence = itemSeq
	item.CreatedAt = now
	item.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Sequence, formatTime(item.CreatedAt), formatTime(item.UpdatedAt),
		string(item.Skill), string(item.Module), string(item.ItemType), string(item.StorageCode),
		string(item.Category), string(item.Confidence), item.Reason, item.Content,
		string(item.Extracted), string(item.Status),
	)
	if err != nil {
		return fmt.Errorf("save item: %w", err)
	}

	if err := appendReviewEvent(ctx, tx, eventSeq, item.ID, item.Status, "created", now); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *itemRepo) Get(ctx context.Context, id string) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return item, nil
}

func (r *itemRepo) List(ctx context.Context, opts QueryOpts) ([]*Item, error) {
	var (
		where []string
		args  []any
	)
	if opts.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(opts.Status))
	}
	if opts.Skill != "" {
		where = append(where, "skill = ?")
		args = append(args, string(opts.Skill))
	}

	q := `SELECT ` + itemColumns + ` FROM items`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY seq DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepo) SetStatus(ctx context.Context, id string, status Status, note string) error {
	if !status.Valid() {
		return fmt.Errorf("set status: invalid status %q", status)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set status: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(now), id,
	)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := appendReviewEvent(ctx, tx, seq, id, status, note, now); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *itemRepo) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	defer rows.Close()

	counts := map[Status]int{
		StatusPendingReview: 0,
		StatusApproved:      0,
		StatusRejected:      0,
	}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[Status(status)] = n
	}
	return counts, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (*Item, error) {
	var (
		item                               Item
		created, updated                   string
		skill, module, itemType, code, cat string
		confidence, extracted, status      string
	)
	err := s.Scan(&item.ID, &item.Sequence, &created, &updated,
		&skill, &module, &itemType, &code,
		&cat, &confidence, &item.Reason, &item.Content, &extracted, &status)
	if err != nil {
		return nil, err
	}

	if item.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	item.Skill = taxonomy.Skill(skill)
	item.Module = taxonomy.Module(module)
	item.ItemType = taxonomy.ItemType(itemType)
	item.StorageCode = taxonomy.StorageCode(code)
	item.Category = taxonomy.Category(cat)
	item.Confidence = taxonomy.Confidence(confidence)
	item.Extracted = []byte(extracted)
	item.Status = Status(status)
	return &item, nil
}
