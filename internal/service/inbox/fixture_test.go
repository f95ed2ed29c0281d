package inbox

import (
	"context"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
	"github.com/heartmarshall/devtrack-inbox/pkg/ctxutil"
)

// baseTime is the epoch every fixture timestamp is offset from.
var baseTime = time.UnixMilli(1_700_000_000_000).UTC()

func at(ms int64) time.Time {
	return baseTime.Add(time.Duration(ms) * time.Millisecond)
}

func testConfig() config.InboxConfig {
	return config.InboxConfig{
		SentNotesLimit:          500,
		MentionScanWindow:       3000,
		SentAnswersLimit:        500,
		ReceivedAnswersLimit:    500,
		MembershipEntitiesLimit: 500,
		MembershipAnswersLimit:  1000,
		DefaultPageSize:         20,
		MaxPageSize:             100,
		BodyPreviewLength:       200,
	}
}

// world is an in-memory dataset served through the repository mocks with
// the same filter, order and cap semantics as the PostgreSQL stores.
type world struct {
	users    []domain.User
	entities []domain.Entity
	notes    []domain.Note
	answers  []domain.Answer

	noteRepo       *noteRepoMock
	keyDevAnswers  *answerRepoMock
	coreAppAnswers *answerRepoMock
	keyDevs        *entityRepoMock
	coreApps       *entityRepoMock
	userRepo       *userRepoMock
}

func (w *world) addUser(name string) domain.User {
	u := domain.User{ID: uuid.New(), Name: name, Email: name + "@example.com"}
	w.users = append(w.users, u)
	return u
}

func (w *world) addEntity(kind domain.ParentKind, title string, ownerID uuid.UUID, requesterID *uuid.UUID) domain.Entity {
	e := domain.Entity{
		Kind:        kind,
		ID:          uuid.New(),
		Title:       title,
		Identifier:  string(kind) + "-" + title,
		OwnerID:     ownerID,
		RequesterID: requesterID,
	}
	w.entities = append(w.entities, e)
	return e
}

func (w *world) addNote(n domain.Note) domain.Note {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	w.notes = append(w.notes, n)
	return n
}

// addAnswer stores a on a fresh question of parent.
func (w *world) addAnswer(parent domain.Entity, a domain.Answer) domain.Answer {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Domain = parent.Kind
	a.QuestionID = uuid.New()
	a.Question = &domain.QuestionInfo{EntityID: parent.ID, Text: "Question on " + parent.Title}
	w.answers = append(w.answers, a)
	return a
}

func (w *world) service(t *testing.T, cfg config.InboxConfig) *Service {
	t.Helper()

	w.noteRepo = &noteRepoMock{
		ListByAuthorFunc: func(_ context.Context, authorID uuid.UUID, q domain.SourceQuery) ([]domain.Note, error) {
			var out []domain.Note
			for _, n := range w.notes {
				if n.AuthorID != authorID || !q.MatchesParent(n.Parent) || !q.MatchesTime(n.CreatedAt) {
					continue
				}
				if !q.MatchesSearch(n.Body, domain.RecipientRoleText(n.Recipient)) {
					continue
				}
				out = append(out, n)
			}
			return newestNotes(out, q.Limit), nil
		},
		ListRecentFunc: func(_ context.Context, window int) ([]domain.Note, error) {
			return newestNotes(slices.Clone(w.notes), window), nil
		},
	}
	w.keyDevAnswers = w.answerMock(domain.ParentKeyDev)
	w.coreAppAnswers = w.answerMock(domain.ParentCoreApp)
	w.keyDevs = w.entityMock(domain.ParentKeyDev)
	w.coreApps = w.entityMock(domain.ParentCoreApp)
	w.userRepo = &userRepoMock{
		GetByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
			var out []domain.User
			for _, u := range w.users {
				if slices.Contains(ids, u.ID) {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}

	return NewService(slog.Default(), Repos{
		Notes:          w.noteRepo,
		KeyDevAnswers:  w.keyDevAnswers,
		CoreAppAnswers: w.coreAppAnswers,
		KeyDevs:        w.keyDevs,
		CoreApps:       w.coreApps,
		Users:          w.userRepo,
	}, cfg)
}

func (w *world) answerMock(kind domain.ParentKind) *answerRepoMock {
	list := func(match func(a *domain.Answer) bool, q domain.SourceQuery) []domain.Answer {
		scopeID, ok := q.ScopeID(kind)
		if !ok {
			return []domain.Answer{}
		}
		var out []domain.Answer
		for i := range w.answers {
			a := &w.answers[i]
			if a.Domain != kind || !match(a) {
				continue
			}
			if scopeID != nil && (a.Question == nil || a.Question.EntityID != *scopeID) {
				continue
			}
			if !q.MatchesTime(a.CreatedAt) || !q.MatchesSearch(a.Body) {
				continue
			}
			out = append(out, *a)
		}
		slices.SortStableFunc(out, func(x, y domain.Answer) int { return y.CreatedAt.Compare(x.CreatedAt) })
		if len(out) > q.Limit {
			out = out[:q.Limit]
		}
		return out
	}

	return &answerRepoMock{
		ListBySenderFunc: func(_ context.Context, senderID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
			return list(func(a *domain.Answer) bool { return a.SenderID == senderID }, q), nil
		},
		ListByRecipientFunc: func(_ context.Context, recipientID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
			return list(func(a *domain.Answer) bool {
				id, ok := a.ExplicitRecipient()
				return ok && id == recipientID
			}, q), nil
		},
		ListByParentIDsFunc: func(_ context.Context, parentIDs []uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
			return list(func(a *domain.Answer) bool {
				return a.Question != nil && slices.Contains(parentIDs, a.Question.EntityID)
			}, q), nil
		},
	}
}

func (w *world) entityMock(kind domain.ParentKind) *entityRepoMock {
	return &entityRepoMock{
		GetByIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.Entity, error) {
			var out []domain.Entity
			for _, e := range w.entities {
				if e.Kind == kind && slices.Contains(ids, e.ID) {
					out = append(out, e)
				}
			}
			return out, nil
		},
		ListByMemberFunc: func(_ context.Context, userID uuid.UUID, scopeID *uuid.UUID, limit int) ([]domain.Entity, error) {
			var out []domain.Entity
			for _, e := range w.entities {
				if e.Kind != kind || (scopeID != nil && e.ID != *scopeID) {
					continue
				}
				if e.OwnerID == userID || (e.RequesterID != nil && *e.RequesterID == userID) {
					out = append(out, e)
				}
			}
			if len(out) > limit {
				out = out[:limit]
			}
			return out, nil
		},
	}
}

func newestNotes(notes []domain.Note, limit int) []domain.Note {
	slices.SortStableFunc(notes, func(x, y domain.Note) int { return y.CreatedAt.Compare(x.CreatedAt) })
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

func userCtx(id uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), id)
}

func ptr[T any](v T) *T {
	return &v
}

func parentRef(e domain.Entity) domain.ParentRef {
	return domain.ParentRef{Kind: e.Kind, ID: e.ID}
}

func itemIDs(items []*domain.InboxItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ItemID
	}
	return ids
}
