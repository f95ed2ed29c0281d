// Package note reads notes attached to KeyDevs and CoreApps.
// Notes are written by the entity editors; this repository never mutates them.
package note

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

var columns = []string{
	"id", "key_dev_id", "core_app_id", "author_id", "body",
	"recipient_role", "mentioned_user_ids", "created_at",
}

// Repo provides read access to the notes table.
type Repo struct {
	q postgres.Querier
}

// New creates a new note repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListByAuthor returns notes written by authorID, newest first, with scope,
// search and time filters applied before the limit. Served by the
// (author_id, created_at DESC) index.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID, q domain.SourceQuery) ([]domain.Note, error) {
	sb := postgres.Builder.Select(columns...).
		From("notes").
		Where(sq.Eq{"author_id": authorID})

	if q.Scope != nil {
		switch q.Scope.Kind {
		case domain.ParentKeyDev:
			sb = sb.Where(sq.Eq{"key_dev_id": q.Scope.ID})
		case domain.ParentCoreApp:
			sb = sb.Where(sq.Eq{"core_app_id": q.Scope.ID})
		}
	}
	if q.Search != "" {
		pattern := postgres.ContainsPattern(q.Search)
		sb = sb.Where(sq.Or{
			sq.ILike{"body": pattern},
			sq.ILike{"recipient_role": pattern},
		})
	}
	if !q.Since.IsZero() {
		sb = sb.Where(sq.GtOrEq{"created_at": q.Since})
	}

	sb = sb.OrderBy("created_at DESC", "id DESC").Limit(uint64(q.Limit))

	return postgres.Select(ctx, r.q, sb, scanNote, "list notes by author")
}

// ListRecent returns the window most recent notes across the whole system,
// unfiltered. There is no index on mentions, so finding notes that mention
// a user means scanning this window in memory: a mention older than the
// window can never be found.
func (r *Repo) ListRecent(ctx context.Context, window int) ([]domain.Note, error) {
	sb := postgres.Builder.Select(columns...).
		From("notes").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(window))

	return postgres.Select(ctx, r.q, sb, scanNote, "list recent notes")
}

func scanNote(row pgx.CollectableRow) (domain.Note, error) {
	var (
		n         domain.Note
		keyDevID  pgtype.UUID
		coreAppID pgtype.UUID
		role      pgtype.Text
		mentions  []pgtype.UUID
	)

	if err := row.Scan(&n.ID, &keyDevID, &coreAppID, &n.AuthorID, &n.Body, &role, &mentions, &n.CreatedAt); err != nil {
		return domain.Note{}, err
	}

	// The table CHECK guarantees exactly one parent column is set.
	if keyDevID.Valid {
		n.Parent = domain.ParentRef{Kind: domain.ParentKeyDev, ID: uuid.UUID(keyDevID.Bytes)}
	} else {
		n.Parent = domain.ParentRef{Kind: domain.ParentCoreApp, ID: uuid.UUID(coreAppID.Bytes)}
	}
	n.Recipient = postgres.ToRecipient(pgtype.UUID{}, role)
	n.Mentions = postgres.UUIDs(mentions)

	return n, nil
}
