package inbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// feedRequest is the per-call state shared by all readers.
type feedRequest struct {
	userID  uuid.UUID
	query   domain.SourceQuery
	loaders *loaders
}

// withLimit returns the request's source query capped at limit.
func (r *feedRequest) withLimit(limit int) domain.SourceQuery {
	q := r.query
	q.Limit = limit
	return q
}

// reader produces normalized feed items for one (kind, direction) pair.
type reader struct {
	kind      domain.ItemKind
	direction domain.Direction
	read      func(ctx context.Context, req *feedRequest) ([]*domain.InboxItem, error)
}

func (r reader) name() string {
	return string(r.kind) + "/" + string(r.direction)
}

// readers returns every reader in the fixed order that decides which copy
// of a duplicated item wins.
func (s *Service) readers() []reader {
	return []reader{
		{domain.ItemKindNote, domain.DirectionSent, s.readSentNotes},
		{domain.ItemKindNote, domain.DirectionReceived, s.readReceivedNotes},
		{domain.ItemKindKeyDevAnswer, domain.DirectionSent, s.sentAnswersReader(domain.ParentKeyDev)},
		{domain.ItemKindKeyDevAnswer, domain.DirectionReceived, s.receivedAnswersReader(domain.ParentKeyDev)},
		{domain.ItemKindCoreAppAnswer, domain.DirectionSent, s.sentAnswersReader(domain.ParentCoreApp)},
		{domain.ItemKindCoreAppAnswer, domain.DirectionReceived, s.receivedAnswersReader(domain.ParentCoreApp)},
	}
}

func (s *Service) readSentNotes(ctx context.Context, req *feedRequest) ([]*domain.InboxItem, error) {
	limit := s.cfg.SentNotesLimit
	notes, err := s.repos.Notes.ListByAuthor(ctx, req.userID, req.withLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list notes by author: %w", err)
	}
	s.warnIfCapped(ctx, "sent_notes", len(notes), limit)

	return normalizeNotes(ctx, req.loaders, notes, domain.DirectionSent)
}

// readReceivedNotes scans the most recent notes system-wide for mentions of
// the user. Mentions are not indexed, so a mention older than the scan
// window is never found.
func (s *Service) readReceivedNotes(ctx context.Context, req *feedRequest) ([]*domain.InboxItem, error) {
	window := s.cfg.MentionScanWindow
	recent, err := s.repos.Notes.ListRecent(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list recent notes: %w", err)
	}
	s.warnIfCapped(ctx, "mention_scan", len(recent), window)

	q := req.query
	notes := make([]domain.Note, 0)
	for i := range recent {
		n := &recent[i]
		if n.AuthorID == req.userID || !n.MentionsUser(req.userID) {
			continue
		}
		if !q.MatchesParent(n.Parent) || !q.MatchesTime(n.CreatedAt) {
			continue
		}
		if !q.MatchesSearch(n.Body, domain.RecipientRoleText(n.Recipient)) {
			continue
		}
		notes = append(notes, *n)
	}

	return normalizeNotes(ctx, req.loaders, notes, domain.DirectionReceived)
}

func (s *Service) sentAnswersReader(kind domain.ParentKind) func(context.Context, *feedRequest) ([]*domain.InboxItem, error) {
	return func(ctx context.Context, req *feedRequest) ([]*domain.InboxItem, error) {
		limit := s.cfg.SentAnswersLimit
		answers, err := s.repos.answers(kind).ListBySender(ctx, req.userID, req.withLimit(limit))
		if err != nil {
			return nil, fmt.Errorf("list %s answers by sender: %w", kind, err)
		}
		s.warnIfCapped(ctx, "sent_answers", len(answers), limit, "domain", kind)

		return normalizeAnswers(ctx, req.loaders, answers, domain.DirectionSent)
	}
}

// receivedAnswersReader combines two paths. Answers addressed to the user by
// id come from the recipient index. Answers addressed by role, or mentioning
// the user, are found through the entities the user owns or requested.
// Self-sent answers are never "received".
func (s *Service) receivedAnswersReader(kind domain.ParentKind) func(context.Context, *feedRequest) ([]*domain.InboxItem, error) {
	return func(ctx context.Context, req *feedRequest) ([]*domain.InboxItem, error) {
		repo := s.repos.answers(kind)

		limit := s.cfg.ReceivedAnswersLimit
		direct, err := repo.ListByRecipient(ctx, req.userID, req.withLimit(limit))
		if err != nil {
			return nil, fmt.Errorf("list %s answers by recipient: %w", kind, err)
		}
		s.warnIfCapped(ctx, "received_answers", len(direct), limit, "domain", kind)

		answers := make([]domain.Answer, 0, len(direct))
		seen := make(map[uuid.UUID]struct{}, len(direct))
		for i := range direct {
			if direct[i].SenderID == req.userID {
				continue
			}
			seen[direct[i].ID] = struct{}{}
			answers = append(answers, direct[i])
		}

		derived, err := s.answersViaMembership(ctx, req, kind)
		if err != nil {
			return nil, err
		}
		for i := range derived {
			if _, ok := seen[derived[i].ID]; ok {
				continue
			}
			answers = append(answers, derived[i])
		}

		return normalizeAnswers(ctx, req.loaders, answers, domain.DirectionReceived)
	}
}

// answersViaMembership returns answers on entities where the user is owner
// or requester that address the user's role there or mention the user.
func (s *Service) answersViaMembership(ctx context.Context, req *feedRequest, kind domain.ParentKind) ([]domain.Answer, error) {
	scopeID, ok := req.query.ScopeID(kind)
	if !ok {
		return nil, nil
	}

	// The scope goes to the store so the entity cap never cuts the scoped entity.
	entityLimit := s.cfg.MembershipEntitiesLimit
	entities, err := s.repos.entities(kind).ListByMember(ctx, req.userID, scopeID, entityLimit)
	if err != nil {
		return nil, fmt.Errorf("list %s by member: %w", kind, err)
	}
	if scopeID == nil {
		s.warnIfCapped(ctx, "membership_entities", len(entities), entityLimit, "domain", kind)
	}

	req.loaders.primeEntities(ctx, entities)

	byID := make(map[uuid.UUID]*domain.Entity, len(entities))
	ids := make([]uuid.UUID, 0, len(entities))
	for i := range entities {
		e := &entities[i]
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	answerLimit := s.cfg.MembershipAnswersLimit
	candidates, err := s.repos.answers(kind).ListByParentIDs(ctx, ids, req.withLimit(answerLimit))
	if err != nil {
		return nil, fmt.Errorf("list %s answers by parent: %w", kind, err)
	}
	s.warnIfCapped(ctx, "membership_answers", len(candidates), answerLimit, "domain", kind)

	out := make([]domain.Answer, 0)
	for i := range candidates {
		a := &candidates[i]
		if a.SenderID == req.userID || a.Question == nil {
			continue
		}
		if addressesUser(a, byID[a.Question.EntityID], req.userID) {
			out = append(out, *a)
		}
	}
	return out, nil
}

// addressesUser reports whether a reaches userID through the role it is
// addressed to on parent or through a mention.
func addressesUser(a *domain.Answer, parent *domain.Entity, userID uuid.UUID) bool {
	if a.MentionsUser(userID) {
		return true
	}
	if _, ok := a.Recipient.(domain.RecipientByRole); !ok {
		return false
	}
	holder, ok := domain.ResolveRecipient(a.Recipient, parent)
	return ok && holder == userID
}

func (s *Service) warnIfCapped(ctx context.Context, source string, got, limit int, attrs ...any) {
	if got < limit {
		return
	}
	args := append([]any{"source", source, "limit", limit}, attrs...)
	s.log.WarnContext(ctx, "feed source hit its cap, older records are not considered", args...)
}
