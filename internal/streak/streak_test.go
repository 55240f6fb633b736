package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance_FirstLog(t *testing.T) {
	s := &Streak{}

	s.Advance(day(2025, time.March, 10))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	require.NotNil(t, s.LastLoggedDate)
	assert.Equal(t, day(2025, time.March, 10), *s.LastLoggedDate)
}

func TestAdvance_SameDayIsIdempotent(t *testing.T) {
	s := &Streak{}
	s.Advance(day(2025, time.March, 10))

	// Second log on the same date, at a later time of day.
	s.Advance(time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, day(2025, time.March, 10), *s.LastLoggedDate)
}

func TestAdvance_ConsecutiveDaysIncrement(t *testing.T) {
	s := &Streak{}

	for i := 0; i < 5; i++ {
		s.Advance(day(2025, time.March, 10+i))
		assert.Equal(t, i+1, s.CurrentStreak)
		assert.Equal(t, i+1, s.LongestStreak)
	}

	assert.Equal(t, day(2025, time.March, 14), *s.LastLoggedDate)
}

func TestAdvance_GapResetsCurrentKeepsLongest(t *testing.T) {
	s := &Streak{}
	s.Advance(day(2025, time.March, 10))
	s.Advance(day(2025, time.March, 11))
	s.Advance(day(2025, time.March, 12))

	// Three day gap.
	s.Advance(day(2025, time.March, 15))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, day(2025, time.March, 15), *s.LastLoggedDate)
}

func TestAdvance_BackdatedLogResets(t *testing.T) {
	s := &Streak{}
	s.Advance(day(2025, time.March, 10))
	s.Advance(day(2025, time.March, 11))

	// An event dated before the last logged date starts a new run.
	s.Advance(day(2025, time.March, 5))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
	assert.Equal(t, day(2025, time.March, 5), *s.LastLoggedDate)
}

func TestAdvance_ResumeAfterResetTracksNewMaximum(t *testing.T) {
	s := &Streak{}
	s.Advance(day(2025, time.March, 10))
	s.Advance(day(2025, time.March, 11))
	s.Advance(day(2025, time.March, 20))

	for i := 1; i <= 3; i++ {
		s.Advance(day(2025, time.March, 20+i))
	}

	assert.Equal(t, 4, s.CurrentStreak)
	assert.Equal(t, 4, s.LongestStreak)
}

func TestAdvance_MonthAndYearBoundaries(t *testing.T) {
	s := &Streak{}
	s.Advance(day(2024, time.December, 31))
	s.Advance(day(2025, time.January, 1))

	assert.Equal(t, 2, s.CurrentStreak)

	s2 := &Streak{}
	s2.Advance(day(2024, time.February, 28))
	s2.Advance(day(2024, time.February, 29)) // leap day
	s2.Advance(day(2024, time.March, 1))

	assert.Equal(t, 3, s2.CurrentStreak)
}

func TestAdvance_LongestNeverBelowCurrent(t *testing.T) {
	s := &Streak{}
	days := []time.Time{
		day(2025, time.June, 1),
		day(2025, time.June, 2),
		day(2025, time.June, 2),
		day(2025, time.June, 5),
		day(2025, time.June, 6),
		day(2025, time.June, 7),
		day(2025, time.June, 8),
		day(2025, time.June, 1),
	}

	for _, d := range days {
		s.Advance(d)
		assert.GreaterOrEqual(t, s.LongestStreak, s.CurrentStreak)
	}
}

func TestAdvance_ExistingRowWithoutDate(t *testing.T) {
	// Seeded streak rows start at {0, 0, nil}; the first log moves them to {1, 1, d}.
	s := &Streak{CurrentStreak: 0, LongestStreak: 0, LastLoggedDate: nil}

	s.Advance(day(2025, time.July, 4))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, day(2025, time.July, 4), *s.LastLoggedDate)
}
