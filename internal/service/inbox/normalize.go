package inbox

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// normalizeNotes projects notes onto feed items. Notes whose parent no
// longer exists are dropped.
func normalizeNotes(ctx context.Context, l *loaders, notes []domain.Note, dir domain.Direction) ([]*domain.InboxItem, error) {
	refs := make([]domain.ParentRef, len(notes))
	for i := range notes {
		refs[i] = notes[i].Parent
	}
	parents, err := l.resolveEntities(ctx, refs)
	if err != nil {
		return nil, err
	}

	var userIDs idSet
	for i := range notes {
		n := &notes[i]
		parent, ok := parents[n.Parent]
		if !ok {
			continue
		}
		userIDs.add(n.AuthorID)
		userIDs.addRecipients(n.Recipient, parent, n.Mentions)
	}
	users, err := l.resolveUsers(ctx, userIDs.ids)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.InboxItem, 0, len(notes))
	for i := range notes {
		n := &notes[i]
		parent, ok := parents[n.Parent]
		if !ok {
			continue
		}
		items = append(items, &domain.InboxItem{
			Kind:       domain.ItemKindNote,
			Direction:  dir,
			ItemID:     n.ID,
			Timestamp:  domain.EpochMillis(n.CreatedAt),
			Body:       n.Body,
			AuthorName: users[n.AuthorID].DisplayName(),
			Recipients: recipientNames(users, n.Recipient, parent, n.Mentions),
			Entity:     parent.Ref(),
		})
	}
	return items, nil
}

// normalizeAnswers projects answers onto feed items. Answers whose question
// or parent no longer exists are dropped.
func normalizeAnswers(ctx context.Context, l *loaders, answers []domain.Answer, dir domain.Direction) ([]*domain.InboxItem, error) {
	refs := make([]domain.ParentRef, 0, len(answers))
	for i := range answers {
		if ref, ok := answerParent(&answers[i]); ok {
			refs = append(refs, ref)
		}
	}
	parents, err := l.resolveEntities(ctx, refs)
	if err != nil {
		return nil, err
	}

	var userIDs idSet
	for i := range answers {
		a := &answers[i]
		ref, ok := answerParent(a)
		if !ok || parents[ref] == nil {
			continue
		}
		userIDs.add(a.SenderID)
		userIDs.addRecipients(a.Recipient, parents[ref], a.Mentions)
	}
	users, err := l.resolveUsers(ctx, userIDs.ids)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.InboxItem, 0, len(answers))
	for i := range answers {
		a := &answers[i]
		ref, ok := answerParent(a)
		if !ok {
			continue
		}
		parent, ok := parents[ref]
		if !ok {
			continue
		}
		questionID := a.QuestionID
		questionText := a.Question.Text
		items = append(items, &domain.InboxItem{
			Kind:         domain.AnswerKind(a.Domain),
			Direction:    dir,
			ItemID:       a.ID,
			QuestionID:   &questionID,
			Timestamp:    domain.EpochMillis(a.CreatedAt),
			Body:         a.Body,
			AuthorName:   users[a.SenderID].DisplayName(),
			Recipients:   recipientNames(users, a.Recipient, parent, a.Mentions),
			Entity:       parent.Ref(),
			QuestionText: &questionText,
		})
	}
	return items, nil
}

func answerParent(a *domain.Answer) (domain.ParentRef, bool) {
	if a.Question == nil {
		return domain.ParentRef{}, false
	}
	return domain.ParentRef{Kind: a.Domain, ID: a.Question.EntityID}, true
}

// recipientNames lists the addressed user first, then mentions in stored
// order. A role nobody holds contributes no name.
func recipientNames(users map[uuid.UUID]*domain.User, r domain.Recipient, parent *domain.Entity, mentions []uuid.UUID) []string {
	var names []string
	if id, ok := domain.ResolveRecipient(r, parent); ok {
		names = append(names, users[id].DisplayName())
	}
	for _, id := range mentions {
		names = append(names, users[id].DisplayName())
	}
	return names
}

// idSet collects ids in first-seen order without repeats.
type idSet struct {
	ids  []uuid.UUID
	seen map[uuid.UUID]struct{}
}

func (s *idSet) add(id uuid.UUID) {
	if s.seen == nil {
		s.seen = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) addRecipients(r domain.Recipient, parent *domain.Entity, mentions []uuid.UUID) {
	if id, ok := domain.ResolveRecipient(r, parent); ok {
		s.add(id)
	}
	for _, id := range mentions {
		s.add(id)
	}
}
