package inbox

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/devtrack-inbox/internal/domain"
)

// aggregate concatenates reader slots in order, keeps the first item seen
// per (kind, item, direction) and sorts newest first. Items with equal
// timestamps keep their reader order.
func aggregate(slots [][]*domain.InboxItem) []*domain.InboxItem {
	total := 0
	for _, slot := range slots {
		total += len(slot)
	}

	out := make([]*domain.InboxItem, 0, total)
	seen := make(map[domain.InboxKey]struct{}, total)
	for _, slot := range slots {
		for _, item := range slot {
			key := item.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}

	slices.SortStableFunc(out, func(a, b *domain.InboxItem) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return out
}
