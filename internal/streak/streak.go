package streak

import (
	"time"

	"github.com/google/uuid"
)

// Streak tracks consecutive logging days for one user. LastLoggedDate is nil
// until the first event advances the streak.
type Streak struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`
	CurrentStreak  int        `json:"current_streak" db:"current_streak"`
	LongestStreak  int        `json:"longest_streak" db:"longest_streak"`
	LastLoggedDate *time.Time `json:"last_logged_date" db:"last_logged_date"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Advance applies one logged event to the streak state. day is the calendar
// date of the event itself, so a backdated log is compared against its own
// date rather than the wall clock. Repeated logs on the same date leave the
// counts untouched; the day after LastLoggedDate extends the run; any other
// date starts a new run of 1. LongestStreak never decreases.
func (s *Streak) Advance(day time.Time) {
	d := dateOnly(day)

	switch {
	case s.LastLoggedDate == nil:
		s.CurrentStreak = 1
		if s.LongestStreak < 1 {
			s.LongestStreak = 1
		}
		s.LastLoggedDate = &d
	case dateOnly(*s.LastLoggedDate).Equal(d):
		// Already logged on this date.
	case dateOnly(*s.LastLoggedDate).AddDate(0, 0, 1).Equal(d):
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
		s.LastLoggedDate = &d
	default:
		s.CurrentStreak = 1
		s.LastLoggedDate = &d
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
