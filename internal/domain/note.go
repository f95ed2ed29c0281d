package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Note is a free-text comment attached to a KeyDev or CoreApp.
type Note struct {
	ID        uuid.UUID
	Parent    ParentRef
	AuthorID  uuid.UUID
	Body      string
	Recipient Recipient
	Mentions  []uuid.UUID
	CreatedAt time.Time
}

// MentionsUser reports whether userID is in the note's mention list.
func (n *Note) MentionsUser(userID uuid.UUID) bool {
	return slices.Contains(n.Mentions, userID)
}
