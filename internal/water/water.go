package water

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// WaterLog is a single logged intake event. Rows are immutable once written.
type WaterLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Amount    int       `json:"amount" db:"amount"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// DailyWaterLog is the per-day rollup returned by the today/history endpoints.
// Date is a calendar date in ISO form (2006-01-02).
type DailyWaterLog struct {
	Date        string     `json:"date"`
	TotalAmount int        `json:"total_amount"`
	Logs        []WaterLog `json:"logs"`
}

const DateLayout = "2006-01-02"

// Day strips the time component, keeping the calendar date of t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SummarizeDay rolls up logs (already filtered to day) into a daily summary,
// ordered by timestamp ascending.
func SummarizeDay(day time.Time, logs []WaterLog) DailyWaterLog {
	sort.Slice(logs, func(i, j int) bool { return logs[i].Timestamp.Before(logs[j].Timestamp) })

	total := 0
	for _, l := range logs {
		total += l.Amount
	}

	if logs == nil {
		logs = []WaterLog{}
	}

	return DailyWaterLog{
		Date:        Day(day).Format(DateLayout),
		TotalAmount: total,
		Logs:        logs,
	}
}

// SummarizeRange groups logs by the calendar date of their timestamp and emits
// one summary per day of [start, end] inclusive, synthesizing zero-total entries
// for days without logs. The result is ascending by date with no gaps or
// duplicates: exactly one entry per day of the span.
func SummarizeRange(start, end time.Time, logs []WaterLog) ([]DailyWaterLog, error) {
	startDay := Day(start)
	endDay := Day(end)

	if endDay.Before(startDay) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			endDay.Format(DateLayout), startDay.Format(DateLayout))
	}

	byDay := make(map[string][]WaterLog)
	for _, l := range logs {
		key := Day(l.Timestamp).Format(DateLayout)
		byDay[key] = append(byDay[key], l)
	}

	var days []DailyWaterLog
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		days = append(days, SummarizeDay(d, byDay[d.Format(DateLayout)]))
	}

	return days, nil
}
