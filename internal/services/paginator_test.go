package services

import (
	"testing"

	"finance-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginator_PagesCoverRecordsExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		records := fakeRecords(n)
		p := NewPaginator(10)
		p.Reset(records)

		var seen []models.Transaction
		for page := 1; page <= p.TotalPages(); page++ {
			items, ok := p.GetPage(page)
			require.True(t, ok)
			assert.LessOrEqual(t, len(items), 10)
			seen = append(seen, items...)
		}

		assert.Equal(t, timestamps(records), timestamps(seen), "n=%d", n)
	}
}

func TestPaginator_LoadMoreDeliversEverythingInOrder(t *testing.T) {
	records := fakeRecords(25)
	p := NewPaginator(10)
	p.Reset(records)

	var delivered []models.Transaction
	for p.HasMore() {
		batch, ok := p.LoadMore()
		require.True(t, ok)
		delivered = append(delivered, batch...)
		assert.Equal(t, len(delivered), p.Cursor())
		assert.Equal(t, p.Cursor() < p.Total(), p.HasMore())
	}

	assert.Equal(t, timestamps(records), timestamps(delivered))
	assert.Equal(t, timestamps(records), timestamps(p.Displayed()))

	batch, ok := p.LoadMore()
	assert.False(t, ok)
	assert.Empty(t, batch)
	assert.Equal(t, 25, p.Cursor())
}

func TestPaginator_OutOfRangePageIsIgnored(t *testing.T) {
	p := NewPaginator(10)
	p.Reset(fakeRecords(25))
	_, ok := p.GetPage(2)
	require.True(t, ok)

	for _, n := range []int{0, -1, 4} {
		_, ok := p.GetPage(n)
		assert.False(t, ok, "page %d", n)
		assert.Equal(t, 2, p.CurrentPage())
	}

	items, ok := p.GetPage(3)
	assert.True(t, ok)
	assert.Len(t, items, 5)
	assert.Equal(t, 3, p.TotalPages())
}

func TestPaginator_EmptySet(t *testing.T) {
	p := NewPaginator(10)
	p.Reset([]models.Transaction{})

	items, ok := p.GetPage(1)
	assert.True(t, ok)
	assert.Empty(t, items)
	assert.Zero(t, p.TotalPages())
	assert.False(t, p.HasMore())

	_, ok = p.LoadMore()
	assert.False(t, ok)
}

func TestPaginator_ResetRewinds(t *testing.T) {
	p := NewPaginator(10)
	p.Reset(fakeRecords(30))
	p.LoadMore()
	p.LoadMore()
	p.GetPage(3)

	p.Reset(fakeRecords(12))

	assert.Equal(t, 1, p.CurrentPage())
	assert.Zero(t, p.Cursor())
	assert.Equal(t, 12, p.Total())
}

func TestPaginator_ReturnsCopies(t *testing.T) {
	records := fakeRecords(5)
	p := NewPaginator(10)
	p.Reset(records)

	items := p.PageItems()
	items[0].Account = "changed"

	assert.NotEqual(t, "changed", records[0].Account)
}

func TestNewPaginator_FallsBackToDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).PageSize())
	assert.Equal(t, DefaultPageSize, NewPaginator(-5).PageSize())
	assert.Equal(t, 3, NewPaginator(3).PageSize())
}
