// Package inbox builds a user's unified activity feed: notes and answers on
// KeyDevs and CoreApps, sent by or addressed to the user, merged newest first.
//
// The feed is a projection recomputed on every call from independently capped
// reads. Two consequences are accepted:
//   - Recall is bounded. A record beyond a reader's cap (for received notes, a
//     mention older than the system-wide scan window) never surfaces.
//   - Pages are not a snapshot. Records written between two page fetches may
//     be skipped or repeated near the page boundary.
package inbox

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

type noteRepo interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID, q domain.SourceQuery) ([]domain.Note, error)
	ListRecent(ctx context.Context, window int) ([]domain.Note, error)
}

type answerRepo interface {
	ListBySender(ctx context.Context, senderID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)
	ListByParentIDs(ctx context.Context, parentIDs []uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)
}

type entityRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entity, error)
	ListByMember(ctx context.Context, userID uuid.UUID, scopeID *uuid.UUID, limit int) ([]domain.Entity, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds the stores the feed reads from.
type Repos struct {
	Notes          noteRepo
	KeyDevAnswers  answerRepo
	CoreAppAnswers answerRepo
	KeyDevs        entityRepo
	CoreApps       entityRepo
	Users          userRepo
}

func (r *Repos) answers(kind domain.ParentKind) answerRepo {
	if kind == domain.ParentCoreApp {
		return r.CoreAppAnswers
	}
	return r.KeyDevAnswers
}

func (r *Repos) entities(kind domain.ParentKind) entityRepo {
	if kind == domain.ParentCoreApp {
		return r.CoreApps
	}
	return r.KeyDevs
}

// Service computes activity feeds.
type Service struct {
	repos Repos
	cfg   config.InboxConfig
	log   *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, repos Repos, cfg config.InboxConfig) *Service {
	return &Service{
		repos: repos,
		cfg:   cfg,
		log:   log.With("service", "inbox"),
	}
}
