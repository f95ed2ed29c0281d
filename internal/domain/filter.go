package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceQuery carries the filters every feed source applies before its cap.
type SourceQuery struct {
	// Scope restricts results to one parent entity. nil means all parents.
	Scope *ParentRef

	// Search is a case-insensitive substring over the body. Empty means no filter.
	Search string

	// Since is an inclusive lower bound on creation time. Zero means unbounded.
	Since time.Time

	// Limit caps the number of candidates returned, newest first.
	Limit int
}

// ScopeID returns the scoped entity id when the scope targets kind.
// The second return is false when the scope excludes kind entirely.
func (q SourceQuery) ScopeID(kind ParentKind) (*uuid.UUID, bool) {
	if q.Scope == nil {
		return nil, true
	}
	if q.Scope.Kind != kind {
		return nil, false
	}
	id := q.Scope.ID
	return &id, true
}

// MatchesParent reports whether ref falls inside the scope.
func (q SourceQuery) MatchesParent(ref ParentRef) bool {
	return q.Scope == nil || *q.Scope == ref
}

// MatchesTime reports whether t satisfies the lower time bound.
func (q SourceQuery) MatchesTime(t time.Time) bool {
	return q.Since.IsZero() || !t.Before(q.Since)
}

// MatchesSearch reports whether any of texts contains the search term.
func (q SourceQuery) MatchesSearch(texts ...string) bool {
	if q.Search == "" {
		return true
	}
	for _, t := range texts {
		if ContainsFold(t, q.Search) {
			return true
		}
	}
	return false
}
