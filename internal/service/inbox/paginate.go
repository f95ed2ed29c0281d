package inbox

import "github.com/heartmarshall/devtrack-inbox/internal/domain"

// paginate takes up to limit items strictly older than beforeTs from the
// sorted feed and truncates their bodies to preview runes.
//
// The cursor is a timestamp, so items sharing the boundary timestamp with
// the last item of a page are not returned on the next page.
func paginate(sorted []*domain.InboxItem, beforeTs *int64, limit, preview int) *ListFeedResult {
	start := 0
	if beforeTs != nil {
		for start < len(sorted) && sorted[start].Timestamp >= *beforeTs {
			start++
		}
	}
	rest := sorted[start:]

	n := min(limit, len(rest))
	items := make([]*domain.InboxItem, n)
	for i, src := range rest[:n] {
		item := *src
		item.Body = domain.TruncateRunes(item.Body, preview)
		items[i] = &item
	}

	result := &ListFeedResult{Items: items}
	if n > 0 && len(rest) > n {
		next := items[n-1].Timestamp
		result.NextBeforeTs = &next
	}
	return result
}
