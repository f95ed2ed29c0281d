package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// Builder is the squirrel statement builder configured for PostgreSQL ($n placeholders).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper escapes LIKE metacharacters; backslash is PostgreSQL's default escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns an ILIKE pattern matching s anywhere in the column.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Select builds sb, runs it and maps every row through scan.
func Select[T any](ctx context.Context, q Querier, sb sq.SelectBuilder, scan pgx.RowToFunc[T], op string) ([]T, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, MapError(err, op+": build")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, MapError(err, op)
	}

	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, MapError(err, op)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// NullUUID converts a nullable uuid column to *uuid.UUID (NULL -> nil).
func NullUUID(v pgtype.UUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := uuid.UUID(v.Bytes)
	return &id
}

// UUIDs converts a uuid[] column to a slice, skipping NULL elements.
func UUIDs(vs []pgtype.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(vs))
	for _, v := range vs {
		if v.Valid {
			out = append(out, uuid.UUID(v.Bytes))
		}
	}
	return out
}

// ToRecipient builds the recipient variant from its two nullable columns.
// An explicit user wins over a role.
func ToRecipient(userID pgtype.UUID, role pgtype.Text) domain.Recipient {
	if userID.Valid {
		return domain.RecipientUser{UserID: uuid.UUID(userID.Bytes)}
	}
	if role.Valid {
		r := domain.RecipientRole(role.String)
		if r.IsValid() {
			return domain.RecipientByRole{Role: r}
		}
	}
	return nil
}
