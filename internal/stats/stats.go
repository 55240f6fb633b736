package stats

import (
	"time"

	"waterReminderAPI/internal/water"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type DataPoint struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

type WaterStats struct {
	Period string      `json:"period"`
	Data   []DataPoint `json:"data"`
}

// ValidPeriod reports whether p names a supported stats window.
func ValidPeriod(p string) bool {
	return p == PeriodWeekly || p == PeriodMonthly
}

// WeekWindow returns the 7-day window containing ref. Weeks run Monday through
// Sunday.
func WeekWindow(ref time.Time) (start, end time.Time) {
	day := water.Day(ref)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthWindow returns the first and last calendar day of ref's month.
func MonthWindow(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// FromDailyLogs collapses per-day summaries into the chart series shape.
func FromDailyLogs(period string, days []water.DailyWaterLog) *WaterStats {
	data := make([]DataPoint, 0, len(days))
	for _, d := range days {
		data = append(data, DataPoint{Date: d.Date, Amount: d.TotalAmount})
	}
	return &WaterStats{Period: period, Data: data}
}
