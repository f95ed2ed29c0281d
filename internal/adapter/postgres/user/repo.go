// Package user reads user profiles for display-name resolution.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// Repo provides read access to users.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByIDs returns the users that exist among ids, in no particular order.
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	sb := postgres.Builder.Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": ids})

	return postgres.Select(ctx, r.q, sb, pgx.RowToStructByPos[domain.User], "get users by ids")
}
