package user

import "time"

type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	HashedPassword    string    `json:"-"`
	IsActive          bool      `json:"is_active"`
	ReminderFrequency int       `json:"reminder_frequency"`
	ActiveHoursStart  int       `json:"active_hours_start"`
	ActiveHoursEnd    int       `json:"active_hours_end"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
