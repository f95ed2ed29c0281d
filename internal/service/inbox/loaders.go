package inbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// loaders batch and memoize user and parent lookups for one feed call.
// Readers run concurrently, so lookups issued by different readers within
// the wait window share a query. A loader must never outlive its call:
// display names and titles change.
type loaders struct {
	users    *dataloader.Loader[uuid.UUID, *domain.User]
	keyDevs  *dataloader.Loader[uuid.UUID, *domain.Entity]
	coreApps *dataloader.Loader[uuid.UUID, *domain.Entity]
}

func newLoaders(repos *Repos) *loaders {
	return &loaders{
		users:    newLoader(newUsersBatchFn(repos.Users)),
		keyDevs:  newLoader(newEntitiesBatchFn(repos.KeyDevs)),
		coreApps: newLoader(newEntitiesBatchFn(repos.CoreApps)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func (l *loaders) entities(kind domain.ParentKind) *dataloader.Loader[uuid.UUID, *domain.Entity] {
	if kind == domain.ParentCoreApp {
		return l.coreApps
	}
	return l.keyDevs
}

// primeEntities seeds the parent cache with rows the caller already read.
func (l *loaders) primeEntities(ctx context.Context, entities []domain.Entity) {
	for i := range entities {
		e := &entities[i]
		l.entities(e.Kind).Prime(ctx, e.ID, e)
	}
}

// resolveEntities looks up every parent in refs. Parents that no longer
// exist are absent from the result.
func (l *loaders) resolveEntities(ctx context.Context, refs []domain.ParentRef) (map[domain.ParentRef]*domain.Entity, error) {
	thunks := make([]dataloader.Thunk[*domain.Entity], len(refs))
	for i, ref := range refs {
		thunks[i] = l.entities(ref.Kind).Load(ctx, ref.ID)
	}

	out := make(map[domain.ParentRef]*domain.Entity, len(refs))
	for i, thunk := range thunks {
		e, err := thunk()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", refs[i].Kind, err)
		}
		if e != nil {
			out[refs[i]] = e
		}
	}
	return out, nil
}

// resolveUsers looks up every user in ids. Unknown users are absent from
// the result; callers render them with a placeholder.
func (l *loaders) resolveUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	thunks := make([]dataloader.Thunk[*domain.User], len(ids))
	for i, id := range ids {
		thunks[i] = l.users.Load(ctx, id)
	}

	out := make(map[uuid.UUID]*domain.User, len(ids))
	for i, thunk := range thunks {
		u, err := thunk()
		if err != nil {
			return nil, fmt.Errorf("load user: %w", err)
		}
		if u != nil {
			out[ids[i]] = u
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, nilValue[*domain.User])
	}
}

func newEntitiesBatchFn(repo entityRepo) dataloader.BatchFunc[uuid.UUID, *domain.Entity] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Entity] {
		entities, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Entity](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Entity, len(entities))
		for i := range entities {
			byID[entities[i].ID] = &entities[i]
		}

		return mapResults(keys, byID, nilValue[*domain.Entity])
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, byKey map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := byKey[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
