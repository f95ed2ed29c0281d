package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityRef is the tagged parent reference carried by an inbox item.
type EntityRef struct {
	Kind       ParentKind
	ID         uuid.UUID
	Title      string
	Identifier string
}

// InboxItem is one entry of the unified activity feed. It is derived on
// every read and never stored.
type InboxItem struct {
	Kind       ItemKind
	Direction  Direction
	ItemID     uuid.UUID
	QuestionID *uuid.UUID
	// Timestamp is the record's creation time in epoch milliseconds.
	Timestamp    int64
	Body         string
	AuthorName   string
	Recipients   []string
	Entity       EntityRef
	QuestionText *string
}

// InboxKey identifies one feed entry.
type InboxKey struct {
	Kind      ItemKind
	ItemID    uuid.UUID
	Direction Direction
}

// Key returns the dedup key of the item.
func (i *InboxItem) Key() InboxKey {
	return InboxKey{Kind: i.Kind, ItemID: i.ItemID, Direction: i.Direction}
}

// EpochMillis converts a record time to the feed's timestamp unit.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
