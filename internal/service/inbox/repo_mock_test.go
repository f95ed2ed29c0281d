package inbox

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	ListByAuthorFunc func(ctx context.Context, authorID uuid.UUID, q domain.SourceQuery) ([]domain.Note, error)
	ListRecentFunc   func(ctx context.Context, window int) ([]domain.Note, error)

	calls struct {
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
			Q        domain.SourceQuery
		}
		ListRecent []struct {
			Ctx    context.Context
			Window int
		}
	}
	lockListByAuthor sync.RWMutex
	lockListRecent   sync.RWMutex
}

func (mock *noteRepoMock) ListByAuthor(ctx context.Context, authorID uuid.UUID, q domain.SourceQuery) ([]domain.Note, error) {
	if mock.ListByAuthorFunc == nil {
		panic("noteRepoMock.ListByAuthorFunc: method is nil but noteRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Q        domain.SourceQuery
	}{Ctx: ctx, AuthorID: authorID, Q: q}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID, q)
}

func (mock *noteRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
	Q        domain.SourceQuery
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListRecent(ctx context.Context, window int) ([]domain.Note, error) {
	if mock.ListRecentFunc == nil {
		panic("noteRepoMock.ListRecentFunc: method is nil but noteRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Window int
	}{Ctx: ctx, Window: window}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, window)
}

func (mock *noteRepoMock) ListRecentCalls() []struct {
	Ctx    context.Context
	Window int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	ListBySenderFunc    func(ctx context.Context, senderID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)
	ListByParentIDsFunc func(ctx context.Context, parentIDs []uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error)

	calls struct {
		ListBySender []struct {
			Ctx      context.Context
			SenderID uuid.UUID
			Q        domain.SourceQuery
		}
		ListByRecipient []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			Q           domain.SourceQuery
		}
		ListByParentIDs []struct {
			Ctx       context.Context
			ParentIDs []uuid.UUID
			Q         domain.SourceQuery
		}
	}
	lockListBySender    sync.RWMutex
	lockListByRecipient sync.RWMutex
	lockListByParentIDs sync.RWMutex
}

func (mock *answerRepoMock) ListBySender(ctx context.Context, senderID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	if mock.ListBySenderFunc == nil {
		panic("answerRepoMock.ListBySenderFunc: method is nil but answerRepo.ListBySender was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SenderID uuid.UUID
		Q        domain.SourceQuery
	}{Ctx: ctx, SenderID: senderID, Q: q}
	mock.lockListBySender.Lock()
	mock.calls.ListBySender = append(mock.calls.ListBySender, callInfo)
	mock.lockListBySender.Unlock()
	return mock.ListBySenderFunc(ctx, senderID, q)
}

func (mock *answerRepoMock) ListBySenderCalls() []struct {
	Ctx      context.Context
	SenderID uuid.UUID
	Q        domain.SourceQuery
} {
	mock.lockListBySender.RLock()
	calls := mock.calls.ListBySender
	mock.lockListBySender.RUnlock()
	return calls
}

func (mock *answerRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	if mock.ListByRecipientFunc == nil {
		panic("answerRepoMock.ListByRecipientFunc: method is nil but answerRepo.ListByRecipient was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		Q           domain.SourceQuery
	}{Ctx: ctx, RecipientID: recipientID, Q: q}
	mock.lockListByRecipient.Lock()
	mock.calls.ListByRecipient = append(mock.calls.ListByRecipient, callInfo)
	mock.lockListByRecipient.Unlock()
	return mock.ListByRecipientFunc(ctx, recipientID, q)
}

func (mock *answerRepoMock) ListByRecipientCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	Q           domain.SourceQuery
} {
	mock.lockListByRecipient.RLock()
	calls := mock.calls.ListByRecipient
	mock.lockListByRecipient.RUnlock()
	return calls
}

func (mock *answerRepoMock) ListByParentIDs(ctx context.Context, parentIDs []uuid.UUID, q domain.SourceQuery) ([]domain.Answer, error) {
	if mock.ListByParentIDsFunc == nil {
		panic("answerRepoMock.ListByParentIDsFunc: method is nil but answerRepo.ListByParentIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ParentIDs []uuid.UUID
		Q         domain.SourceQuery
	}{Ctx: ctx, ParentIDs: parentIDs, Q: q}
	mock.lockListByParentIDs.Lock()
	mock.calls.ListByParentIDs = append(mock.calls.ListByParentIDs, callInfo)
	mock.lockListByParentIDs.Unlock()
	return mock.ListByParentIDsFunc(ctx, parentIDs, q)
}

func (mock *answerRepoMock) ListByParentIDsCalls() []struct {
	Ctx       context.Context
	ParentIDs []uuid.UUID
	Q         domain.SourceQuery
} {
	mock.lockListByParentIDs.RLock()
	calls := mock.calls.ListByParentIDs
	mock.lockListByParentIDs.RUnlock()
	return calls
}

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]domain.Entity, error)
	ListByMemberFunc func(ctx context.Context, userID uuid.UUID, scopeID *uuid.UUID, limit int) ([]domain.Entity, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ListByMember []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			ScopeID *uuid.UUID
			Limit   int
		}
	}
	lockGetByIDs     sync.RWMutex
	lockListByMember sync.RWMutex
}

func (mock *entityRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entity, error) {
	if mock.GetByIDsFunc == nil {
		panic("entityRepoMock.GetByIDsFunc: method is nil but entityRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *entityRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *entityRepoMock) ListByMember(ctx context.Context, userID uuid.UUID, scopeID *uuid.UUID, limit int) ([]domain.Entity, error) {
	if mock.ListByMemberFunc == nil {
		panic("entityRepoMock.ListByMemberFunc: method is nil but entityRepo.ListByMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ScopeID *uuid.UUID
		Limit   int
	}{Ctx: ctx, UserID: userID, ScopeID: scopeID, Limit: limit}
	mock.lockListByMember.Lock()
	mock.calls.ListByMember = append(mock.calls.ListByMember, callInfo)
	mock.lockListByMember.Unlock()
	return mock.ListByMemberFunc(ctx, userID, scopeID, limit)
}

func (mock *entityRepoMock) ListByMemberCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	ScopeID *uuid.UUID
	Limit   int
} {
	mock.lockListByMember.RLock()
	calls := mock.calls.ListByMember
	mock.lockListByMember.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
