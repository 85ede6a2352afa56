package categories

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/catalog/models"
)

func withPriorities(values ...string) []models.Category {
	list := make([]models.Category, len(values))
	for i, v := range values {
		list[i] = models.Category{CategoryName: v, Priority: decimal.RequireFromString(v)}
	}
	return list
}

func TestReinsert(t *testing.T) {
	list := withPriorities("1", "2", "3", "4", "5")

	tests := []struct {
		name string
		rank int
		want string
	}{
		{"first", 0, "0"},
		{"before first", -3, "0"},
		{"last", 4, "6"},
		{"past last", 10, "6"},
		{"middle", 2, "3"},
		{"second", 1, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reinsert(tt.rank, list)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestReinsert_UnsortedInputIsNotMutated(t *testing.T) {
	list := withPriorities("5", "1", "3", "2", "4")

	got := Reinsert(0, list)

	assert.True(t, got.Equal(decimal.Zero))
	assert.Equal(t, "5", list[0].CategoryName)
	assert.Equal(t, "1", list[1].CategoryName)
	assert.Equal(t, "4", list[4].CategoryName)
}

func TestReinsert_Empty(t *testing.T) {
	assert.True(t, Reinsert(3, nil).Equal(decimal.Zero))
}

func TestReinsert_MidpointIsExact(t *testing.T) {
	list := withPriorities("1", "2", "4")

	got := Reinsert(1, list)

	assert.Equal(t, "2.5", got.String())
}

func TestReinsert_RepeatedMidpointsStayBetweenNeighbours(t *testing.T) {
	low := decimal.NewFromInt(1)
	high := decimal.NewFromInt(2)

	for i := 0; i < 200; i++ {
		list := []models.Category{{Priority: low}, {Priority: high}, {Priority: high}}
		mid := Reinsert(1, list)
		require.True(t, mid.GreaterThan(low), "iteration %d: %s <= %s", i, mid, low)
		require.True(t, mid.LessThan(high), "iteration %d: %s >= %s", i, mid, high)
		high = mid
	}
}

func TestPickRanked(t *testing.T) {
	docs := withPriorities("30", "10", "20")

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"negative clamps to first", -1, "10"},
		{"zero", 0, "10"},
		{"in range", 1, "20"},
		{"last", 2, "30"},
		{"beyond length clamps to last", 7, "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickRanked(docs, tt.index)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.CategoryName)
		})
	}

	assert.Nil(t, pickRanked(nil, 0))
}

func TestSortedByPriority_StableOnTies(t *testing.T) {
	list := []models.Category{
		{CategoryName: "b", Priority: decimal.NewFromInt(2)},
		{CategoryName: "a1", Priority: decimal.NewFromInt(1)},
		{CategoryName: "a2", Priority: decimal.NewFromInt(1)},
	}

	sorted := sortedByPriority(list)

	assert.Equal(t, []string{"a1", "a2", "b"}, []string{sorted[0].CategoryName, sorted[1].CategoryName, sorted[2].CategoryName})
	assert.Equal(t, "b", list[0].CategoryName)
}

func TestPriorityClock(t *testing.T) {
	t.Run("strictly increasing when time stands still", func(t *testing.T) {
		frozen := time.UnixMilli(1_700_000_000_000)
		clock := &priorityClock{now: func() time.Time { return frozen }}

		first := clock.Next()
		second := clock.Next()
		third := clock.Next()

		assert.Equal(t, "1700000000000", first.String())
		assert.True(t, second.GreaterThan(first))
		assert.True(t, third.GreaterThan(second))
	})

	t.Run("never goes backwards", func(t *testing.T) {
		now := time.UnixMilli(2_000)
		clock := &priorityClock{now: func() time.Time { return now }}

		first := clock.Next()
		now = time.UnixMilli(1_000)
		second := clock.Next()

		assert.True(t, second.GreaterThan(first))
	})

	t.Run("unique under concurrency", func(t *testing.T) {
		clock := &priorityClock{now: time.Now}
		const n = 200

		var (
			mu   sync.Mutex
			seen = make(map[string]bool, n)
			wg   sync.WaitGroup
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v := clock.Next().String()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, seen, n)
	})
}
