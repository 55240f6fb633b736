package stats

import (
	"testing"
	"time"

	"waterReminderAPI/internal/water"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow_MondayStart(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
	}{
		{
			name:      "wednesday maps back to monday",
			ref:       time.Date(2025, time.March, 12, 14, 30, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday is its own week start",
			ref:       time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the preceding monday",
			ref:       time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekWindow(tt.ref)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 6), end)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name    string
		ref     time.Time
		wantEnd time.Time
	}{
		{
			name:    "february leap year has 29 days",
			ref:     time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "february non-leap year has 28 days",
			ref:     time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "december rolls into the next year",
			ref:     time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthWindow(tt.ref)
			assert.Equal(t, 1, start.Day())
			assert.Equal(t, tt.ref.Month(), start.Month())
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthWindow_FebruaryEntryCounts(t *testing.T) {
	start, end := MonthWindow(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	days, err := water.SummarizeRange(start, end, nil)
	require.NoError(t, err)
	assert.Len(t, days, 29)

	start, end = MonthWindow(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	days, err = water.SummarizeRange(start, end, nil)
	require.NoError(t, err)
	assert.Len(t, days, 28)
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod(PeriodWeekly))
	assert.True(t, ValidPeriod(PeriodMonthly))
	assert.False(t, ValidPeriod("yearly"))
	assert.False(t, ValidPeriod(""))
	assert.False(t, ValidPeriod("Weekly"))
}

func TestFromDailyLogs_EmptyWeekIsAllZero(t *testing.T) {
	start, end := WeekWindow(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	days, err := water.SummarizeRange(start, end, nil)
	require.NoError(t, err)

	series := FromDailyLogs(PeriodWeekly, days)

	assert.Equal(t, PeriodWeekly, series.Period)
	require.Len(t, series.Data, 7)
	for _, point := range series.Data {
		assert.Equal(t, 0, point.Amount)
	}
	assert.Equal(t, "2025-03-10", series.Data[0].Date)
	assert.Equal(t, "2025-03-16", series.Data[6].Date)
}
