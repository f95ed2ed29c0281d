// Package qa reads question/answer threads. KeyDev and CoreApp threads live
// in parallel table pairs with identical shape; one Repo serves one pair.
package qa

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// Tables names one question/answer table pair.
type Tables struct {
	Domain    domain.ParentKind
	Questions string
	Answers   string
	// ParentColumn is the questions column referencing the parent entity.
	ParentColumn string
}

var (
	KeyDevTables = Tables{
		Domain:       domain.ParentKeyDev,
		Questions:    "key_dev_questions",
		Answers:      "key_dev_answers",
		ParentColumn: "key_dev_id",
	}
	CoreAppTables = Tables{
		Domain:       domain.ParentCoreApp,
		Questions:    "core_app_questions",
		Answers:      "core_app_answers",
		ParentColumn: "core_app_id",
	}
)

// Repo provides read access to one domain's answers, joined to their question.
type Repo struct {
	q postgres.Querier
	t Tables
}

// New creates a new answer repository over the given table pair.
func New(q postgres.Querier, t Tables) *Repo {
	return &Repo{q: q, t: t}
}

// ListBySender returns answers sent by senderID, newest first.
func (r *Repo) ListBySender(ctx context.Context, senderID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	return r.list(ctx, sq.Eq{"a.sender_id": senderID}, q, "list answers by sender")
}

// ListByRecipient returns answers explicitly addressed to recipientID, newest first.
// Role-addressed answers are not covered; see ListByParentIDs.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	return r.list(ctx, sq.Eq{"a.recipient_user_id": recipientID}, q, "list answers by recipient")
}

// ListByParentIDs returns answers to questions on any of parentIDs, newest first.
func (r *Repo) ListByParentIDs(ctx context.Context, parentIDs []uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	if len(parentIDs) == 0 {
		return []domain.Answer{}, nil
	}
	return r.list(ctx, sq.Eq{"q." + r.t.ParentColumn: parentIDs}, q, "list answers by parent")
}

func (r *Repo) list(ctx context.Context, pred sq.Sqlizer, q domain.SourceQuery, op string) ([]domain.Answer, error) {
	scopeID, ok := q.ScopeID(r.t.Domain)
	if !ok {
		return []domain.Answer{}, nil
	}

	// LEFT JOIN keeps answers whose question was deleted; the caller drops them.
	sb := postgres.Builder.Select(
		"a.id", "a.question_id", "a.sender_id", "a.recipient_user_id", "a.recipient_role",
		"a.mentioned_user_ids", "a.body", "a.created_at",
		"q."+r.t.ParentColumn, "q.text",
	).
		From(r.t.Answers + " a").
		LeftJoin(r.t.Questions + " q ON q.id = a.question_id").
		Where(pred)

	if scopeID != nil {
		sb = sb.Where(sq.Eq{"q." + r.t.ParentColumn: *scopeID})
	}
	if q.Search != "" {
		sb = sb.Where(sq.ILike{"a.body": postgres.ContainsPattern(q.Search)})
	}
	if !q.Since.IsZero() {
		sb = sb.Where(sq.GtOrEq{"a.created_at": q.Since})
	}

	sb = sb.OrderBy("a.created_at DESC", "a.id DESC").Limit(uint64(q.Limit))

	return postgres.Select(ctx, r.q, sb, r.scanAnswer, op)
}

func (r *Repo) scanAnswer(row pgx.CollectableRow) (domain.Answer, error) {
	var (
		a           domain.Answer
		recipientID pgtype.UUID
		role        pgtype.Text
		mentions    []pgtype.UUID
		parentID    pgtype.UUID
		qText       pgtype.Text
	)

	err := row.Scan(
		&a.ID, &a.QuestionID, &a.SenderID, &recipientID, &role,
		&mentions, &a.Body, &a.CreatedAt,
		&parentID, &qText,
	)
	if err != nil {
		return domain.Answer{}, err
	}

	a.Domain = r.t.Domain
	a.Recipient = postgres.ToRecipient(recipientID, role)
	a.Mentions = postgres.UUIDs(mentions)
	if parentID.Valid {
		a.Question = &domain.QuestionInfo{
			EntityID: uuid.UUID(parentID.Bytes),
			Text:     qText.String,
		}
	}

	return a, nil
}
