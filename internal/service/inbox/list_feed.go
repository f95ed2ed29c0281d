package inbox

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
	"github.com/heartmarshall/devtrack-inbox/pkg/ctxutil"
)

// ListFeedResult is one page of the feed.
type ListFeedResult struct {
	Items []*domain.InboxItem
	// NextBeforeTs is the cursor for the following page, nil when this page
	// holds the last matching item.
	NextBeforeTs *int64
}

// ListFeed returns one page of the requesting user's activity feed, newest
// first. Identical input over unchanged data yields identical output.
func (s *Service) ListFeed(ctx context.Context, input ListFeedInput) (*ListFeedResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)

	req := &feedRequest{
		userID:  userID,
		query:   sourceQuery(input),
		loaders: newLoaders(&s.repos),
	}

	var selected []reader
	for _, r := range s.readers() {
		if input.wants(r.kind, r.direction) {
			selected = append(selected, r)
		}
	}

	// Each reader owns one slot, so concatenation order never depends on
	// which reader finishes first.
	slots := make([][]*domain.InboxItem, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range selected {
		g.Go(func() error {
			items, err := r.read(gctx, req)
			if err != nil {
				return fmt.Errorf("read %s: %w", r.name(), err)
			}
			slots[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := aggregate(slots)
	result := paginate(merged, input.BeforeTs, limit, s.cfg.BodyPreviewLength)

	s.log.DebugContext(ctx, "feed listed",
		"user_id", userID,
		"readers", len(selected),
		"candidates", len(merged),
		"returned", len(result.Items),
	)

	return result, nil
}

func sourceQuery(input ListFeedInput) domain.SourceQuery {
	q := domain.SourceQuery{
		Scope:  input.scope(),
		Search: domain.NormalizeSearch(input.SearchQuery),
	}
	if input.SinceTs > 0 {
		q.Since = time.UnixMilli(input.SinceTs)
	}
	return q
}
