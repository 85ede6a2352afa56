package categories

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joefazee/catalog/models"
)

var half = decimal.New(5, -1)

// Reinsert returns the priority that places a category at rank (0-based)
// among list, without renumbering anything else.
//
// Before the first entry and after the last entry the neighbour's priority
// is shifted by one; in between it is the exact midpoint of the entries at
// rank-1 and rank+1. The caller's slice is not reordered. An empty list
// yields zero.
func Reinsert(rank int, list []models.Category) decimal.Decimal {
	if len(list) == 0 {
		return decimal.Zero
	}

	sorted := sortedByPriority(list)
	last := len(sorted) - 1

	switch {
	case rank <= 0:
		return sorted[0].Priority.Sub(decimal.NewFromInt(1))
	case rank >= last:
		return sorted[last].Priority.Add(decimal.NewFromInt(1))
	default:
		return sorted[rank-1].Priority.Add(sorted[rank+1].Priority).Mul(half)
	}
}

// pickRanked sorts docs by priority and returns the one at index clamped to the slice.
// nil when docs is empty.
func pickRanked(docs []models.Category, index int) *models.Category {
	if len(docs) == 0 {
		return nil
	}
	sorted := sortedByPriority(docs)
	if index < 0 {
		index = 0
	}
	if index > len(sorted)-1 {
		index = len(sorted) - 1
	}
	return &sorted[index]
}

// sortedByPriority returns an ascending copy; ties keep input order
func sortedByPriority(list []models.Category) []models.Category {
	sorted := make([]models.Category, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.LessThan(sorted[j].Priority)
	})
	return sorted
}

// priorityClock hands out millisecond timestamps that never repeat or go
// backwards within the process, even when two calls share a millisecond.
type priorityClock struct {
	last atomic.Int64
	now  func() time.Time
}

var defaultClock = &priorityClock{now: time.Now}

func (c *priorityClock) Next() decimal.Decimal {
	for {
		now := c.now().UnixMilli()
		last := c.last.Load()
		if now <= last {
			now = last + 1
		}
		if c.last.CompareAndSwap(last, now) {
			return decimal.NewFromInt(now)
		}
	}
}
