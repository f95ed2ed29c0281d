// Package entity reads the tracked parent records (KeyDevs and CoreApps).
package entity

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// Table names the storage of one parent kind.
type Table struct {
	Kind domain.ParentKind
	Name string
}

var (
	KeyDevTable  = Table{Kind: domain.ParentKeyDev, Name: "key_devs"}
	CoreAppTable = Table{Kind: domain.ParentCoreApp, Name: "core_apps"}
)

var columns = []string{"id", "title", "identifier", "owner_id", "requester_id"}

// Repo provides read access to one parent entity table.
type Repo struct {
	q postgres.Querier
	t Table
}

// New creates a new entity repository.
func New(q postgres.Querier, t Table) *Repo {
	return &Repo{q: q, t: t}
}

// GetByIDs returns the entities that still exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entity, error) {
	if len(ids) == 0 {
		return []domain.Entity{}, nil
	}

	sb := postgres.Builder.Select(columns...).
		From(r.t.Name).
		Where(sq.Eq{"id": ids})

	return postgres.Select(ctx, r.q, sb, r.scanEntity, "get "+r.t.Name+" by ids")
}

// ListByMember returns entities where userID is owner or requester, most
// recently created first, at most limit rows. A non-nil scopeID restricts
// the result to that one entity before the limit applies.
func (r *Repo) ListByMember(ctx context.Context, userID uuid.UUID, scopeID *uuid.UUID, limit int) ([]domain.Entity, error) {
	sb := postgres.Builder.Select(columns...).
		From(r.t.Name).
		Where(sq.Or{
			sq.Eq{"owner_id": userID},
			sq.Eq{"requester_id": userID},
		})
	if scopeID != nil {
		sb = sb.Where(sq.Eq{"id": *scopeID})
	}
	sb = sb.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	return postgres.Select(ctx, r.q, sb, r.scanEntity, "list "+r.t.Name+" by member")
}

func (r *Repo) scanEntity(row pgx.CollectableRow) (domain.Entity, error) {
	var (
		e           domain.Entity
		requesterID pgtype.UUID
	)

	if err := row.Scan(&e.ID, &e.Title, &e.Identifier, &e.OwnerID, &requesterID); err != nil {
		return domain.Entity{}, err
	}

	e.Kind = r.t.Kind
	e.RequesterID = postgres.NullUUID(requesterID)

	return e, nil
}
