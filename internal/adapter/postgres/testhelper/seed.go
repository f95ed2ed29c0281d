package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. An empty name is stored as-is.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name string) domain.User {
	t.Helper()

	u := domain.User{
		ID:    uuid.New(),
		Name:  name,
		Email: "user-" + uniqueSuffix() + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		u.ID, u.Name, u.Email,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedEntity creates a KeyDev or CoreApp owned by ownerID. requesterID may be nil.
func SeedEntity(t *testing.T, pool *pgxpool.Pool, kind domain.ParentKind, ownerID uuid.UUID, requesterID *uuid.UUID) domain.Entity {
	t.Helper()

	suffix := uniqueSuffix()
	e := domain.Entity{
		Kind:        kind,
		ID:          uuid.New(),
		Title:       "Entity " + suffix,
		Identifier:  string(kind) + "-" + suffix,
		OwnerID:     ownerID,
		RequesterID: requesterID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+entityTable(kind)+` (id, title, identifier, owner_id, requester_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Title, e.Identifier, e.OwnerID, e.RequesterID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity: %v", err)
	}
	return e
}

// SeedNote inserts n as given. Parent, author and creation time must be set.
func SeedNote(t *testing.T, pool *pgxpool.Pool, n domain.Note) domain.Note {
	t.Helper()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = n.CreatedAt.UTC().Truncate(time.Microsecond)

	var keyDevID, coreAppID *uuid.UUID
	parentID := n.Parent.ID
	if n.Parent.Kind == domain.ParentCoreApp {
		coreAppID = &parentID
	} else {
		keyDevID = &parentID
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, key_dev_id, core_app_id, author_id, body, recipient_role, mentioned_user_ids, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, keyDevID, coreAppID, n.AuthorID, n.Body, roleColumn(n.Recipient), mentionsColumn(n.Mentions), n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}
	return n
}

// SeedQuestion creates a question on the given parent and returns its id.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, parent domain.ParentRef, text string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	table, column := "key_dev_questions", "key_dev_id"
	if parent.Kind == domain.ParentCoreApp {
		table, column = "core_app_questions", "core_app_id"
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+table+` (id, `+column+`, text) VALUES ($1, $2, $3)`,
		id, parent.ID, text,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}
	return id
}

// SeedAnswer inserts a into the answer table of a.Domain. QuestionID,
// SenderID and CreatedAt must be set.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, a domain.Answer) domain.Answer {
	t.Helper()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = a.CreatedAt.UTC().Truncate(time.Microsecond)

	table := "key_dev_answers"
	if a.Domain == domain.ParentCoreApp {
		table = "core_app_answers"
	}

	var recipientID *uuid.UUID
	if id, ok := a.ExplicitRecipient(); ok {
		recipientID = &id
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+table+` (id, question_id, sender_id, recipient_user_id, recipient_role, mentioned_user_ids, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.QuestionID, a.SenderID, recipientID, roleColumn(a.Recipient), mentionsColumn(a.Mentions), a.Body, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer: %v", err)
	}
	return a
}

func entityTable(kind domain.ParentKind) string {
	if kind == domain.ParentCoreApp {
		return "core_apps"
	}
	return "key_devs"
}

func roleColumn(r domain.Recipient) *string {
	if v, ok := r.(domain.RecipientByRole); ok {
		s := v.Role.String()
		return &s
	}
	return nil
}

func mentionsColumn(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
