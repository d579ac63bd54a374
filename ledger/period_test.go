package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	p := Between(date(2024, time.March, 1), date(2024, time.March, 10))

	assert.True(t, p.Contains(date(2024, time.March, 1)))
	assert.True(t, p.Contains(time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(date(2024, time.March, 11)))
	assert.False(t, p.Contains(time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC)))
}

func TestBetweenSingleDay(t *testing.T) {
	p := Between(date(2024, time.March, 5), date(2024, time.March, 5))

	assert.True(t, p.Contains(time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(date(2024, time.March, 6)))
}

func TestThrough(t *testing.T) {
	p := Through(date(2024, time.March, 10))

	assert.True(t, p.Contains(date(1970, time.January, 1)))
	assert.True(t, p.Contains(time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(date(2024, time.March, 11)))
	assert.Nil(t, p.Start())
}

func TestAllTime(t *testing.T) {
	p := AllTime()
	assert.True(t, p.Contains(date(1970, time.January, 1)))
	assert.True(t, p.Contains(date(2999, time.December, 31)))
	assert.Nil(t, p.Start())
	assert.Nil(t, p.Until())
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 15, 30, 0, 0, time.UTC)
	p := Today(now)

	assert.True(t, p.Contains(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(date(2024, time.March, 4)))
	assert.False(t, p.Contains(date(2024, time.March, 6)))
}

func TestThisWeek(t *testing.T) {
	// 2024-03-07 is a Thursday; the week starts Monday 2024-03-04.
	now := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	p := ThisWeek(now)

	assert.True(t, p.Contains(date(2024, time.March, 4)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 3, 23, 0, 0, 0, time.UTC)))

	t.Run("MondayStartsItsOwnWeek", func(t *testing.T) {
		monday := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
		p := ThisWeek(monday)
		assert.True(t, p.Contains(date(2024, time.March, 4)))
		assert.False(t, p.Contains(date(2024, time.March, 3)))
	})

	t.Run("SundayBelongsToPrecedingMonday", func(t *testing.T) {
		sunday := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
		p := ThisWeek(sunday)
		assert.True(t, p.Contains(date(2024, time.March, 4)))
		assert.False(t, p.Contains(date(2024, time.March, 3)))
	})
}

func TestThisMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	p := ThisMonth(now)

	assert.True(t, p.Contains(date(2024, time.March, 1)))
	assert.False(t, p.Contains(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)))
}
