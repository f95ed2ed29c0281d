package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// QuestionInfo is the part of the parent question joined onto an answer.
type QuestionInfo struct {
	EntityID uuid.UUID
	Text     string
}

// Answer is one reply in a KeyDev or CoreApp question thread.
type Answer struct {
	ID         uuid.UUID
	Domain     ParentKind
	QuestionID uuid.UUID
	SenderID   uuid.UUID
	Recipient  Recipient
	Mentions   []uuid.UUID
	Body       string
	CreatedAt  time.Time

	// Question is nil when the parent question no longer exists.
	Question *QuestionInfo
}

// MentionsUser reports whether userID is in the answer's mention list.
func (a *Answer) MentionsUser(userID uuid.UUID) bool {
	return slices.Contains(a.Mentions, userID)
}

// ExplicitRecipient returns the explicitly addressed user, if any.
func (a *Answer) ExplicitRecipient() (uuid.UUID, bool) {
	if v, ok := a.Recipient.(RecipientUser); ok && v.UserID != uuid.Nil {
		return v.UserID, true
	}
	return uuid.Nil, false
}
