package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

// ErrNotFound is returned when an item does not exist.
var ErrNotFound = errors.New("item not found")

// Status is the review state of a stored item.
type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus converts user input to a Status.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}

// Item is a classified and extracted block of content awaiting or past
// review.
type Item struct {
	ID          string               `json:"id"`
	Sequence    int64                `json:"sequence"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Skill       taxonomy.Skill       `json:"skill"`
	Module      taxonomy.Module      `json:"module"`
	ItemType    taxonomy.ItemType    `json:"item_type"`
	StorageCode taxonomy.StorageCode `json:"storage_code"`
	Category    taxonomy.Category    `json:"category"`
	Confidence  taxonomy.Confidence  `json:"confidence"`
	Reason      string               `json:"reason"`
	Content     string               `json:"content"`
	Extracted   json.RawMessage      `json:"extracted"`
	Status      Status               `json:"status"`
}

// QueryOpts configures item listing.
type QueryOpts struct {
	Limit  int            // max results (0 = unlimited)
	Status Status         // exact match when set
	Skill  taxonomy.Skill // exact match when set
}

// ItemRepo manages stored items.
type ItemRepo interface {
	// Save inserts a new item, assigning ID, sequence and timestamps.
	// Status defaults to pending review.
	Save(ctx context.Context, item *Item) error

	// Get returns the item with id or ErrNotFound.
	Get(ctx context.Context, id string) (*Item, error)

	// List returns items newest first.
	List(ctx context.Context, opts QueryOpts) ([]*Item, error)

	// SetStatus moves an item to status and records a review event.
	SetStatus(ctx context.Context, id string, status Status, note string) error

	// CountByStatus returns the number of items in each status.
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

// ReviewEvent records one status transition of an item.
type ReviewEvent struct {
	Sequence  int64     `json:"sequence"`
	ItemID    string    `json:"item_id"`
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepo provides read access to review history.
type EventRepo interface {
	// History returns the review events of an item in sequence order.
	History(ctx context.Context, itemID string) ([]ReviewEvent, error)
}
