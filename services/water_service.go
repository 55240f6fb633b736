package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waterReminderAPI/internal/goal"
	"waterReminderAPI/internal/stats"
	"waterReminderAPI/internal/streak"
	"waterReminderAPI/internal/water"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WaterService struct {
	db *pgxpool.Pool
}

func NewWaterService(db *pgxpool.Pool) *WaterService {
	return &WaterService{db: db}
}

// CreateLog records one intake event and advances the streak. Both writes
// happen in a single transaction with the streak row locked, so concurrent
// logs for the same user serialize instead of losing updates.
func (s *WaterService) CreateLog(ctx context.Context, userID string, req *water.LogWaterRequest) (*water.WaterLog, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	amount := 1
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be a positive integer")
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	logEntry := &water.WaterLog{
		ID:        uuid.New(),
		UserID:    uid,
		Amount:    amount,
		Notes:     req.Notes,
		Timestamp: timestamp,
	}

	query := `
	INSERT INTO water_logs (id, user_id, amount, notes, timestamp)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err = tx.Exec(ctx, query, logEntry.ID, logEntry.UserID, logEntry.Amount, logEntry.Notes, logEntry.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to create water log: %w", err)
	}

	if err := s.advanceStreak(ctx, tx, uid, timestamp); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit water log: %w", err)
	}

	return logEntry, nil
}

// advanceStreak applies the logged event's calendar date to the user's streak
// inside the caller's transaction. The row lock serializes same-user logs.
func (s *WaterService) advanceStreak(ctx context.Context, tx pgx.Tx, userID uuid.UUID, eventTime time.Time) error {
	st := &streak.Streak{}

	query := `
	SELECT id, user_id, current_streak, longest_streak, last_logged_date, updated_at
	FROM streaks
	WHERE user_id = $1
	FOR UPDATE
	`

	err := tx.QueryRow(ctx, query, userID).Scan(
		&st.ID,
		&st.UserID,
		&st.CurrentStreak,
		&st.LongestStreak,
		&st.LastLoggedDate,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Accounts predating the seeded streak row get one on first log.
			day := water.Day(eventTime)
			_, err = tx.Exec(ctx, `
			INSERT INTO streaks (id, user_id, current_streak, longest_streak, last_logged_date, updated_at)
			VALUES ($1, $2, 1, 1, $3, NOW())
			`, uuid.New(), userID, day)
			if err != nil {
				return fmt.Errorf("failed to create streak: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get streak: %w", err)
	}

	st.Advance(eventTime)

	_, err = tx.Exec(ctx, `
	UPDATE streaks
	SET current_streak = $2, longest_streak = $3, last_logged_date = $4, updated_at = NOW()
	WHERE user_id = $1
	`, userID, st.CurrentStreak, st.LongestStreak, st.LastLoggedDate)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}

	return nil
}

// GetDailyLog returns the rollup for one calendar day.
func (s *WaterService) GetDailyLog(ctx context.Context, userID string, day time.Time) (*water.DailyWaterLog, error) {
	logs, err := s.getLogsBetween(ctx, userID, water.Day(day), water.Day(day).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summary := water.SummarizeDay(day, logs)
	return &summary, nil
}

// GetHistory returns one rollup per calendar day of [startDate, endDate]
// inclusive, zero-filled for days without logs.
func (s *WaterService) GetHistory(ctx context.Context, userID string, startDate, endDate time.Time) ([]water.DailyWaterLog, error) {
	start := water.Day(startDate)
	end := water.Day(endDate)
	if end.Before(start) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}

	logs, err := s.getLogsBetween(ctx, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return water.SummarizeRange(start, end, logs)
}

// GetStats builds the weekly or monthly chart series anchored on today.
func (s *WaterService) GetStats(ctx context.Context, userID string, period string) (*stats.WaterStats, error) {
	if !stats.ValidPeriod(period) {
		return nil, fmt.Errorf("invalid period: must be 'weekly' or 'monthly'")
	}

	var start, end time.Time
	if period == stats.PeriodWeekly {
		start, end = stats.WeekWindow(time.Now())
	} else {
		start, end = stats.MonthWindow(time.Now())
	}

	days, err := s.GetHistory(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return stats.FromDailyLogs(period, days), nil
}

func (s *WaterService) GetStreak(ctx context.Context, userID string) (*streak.Streak, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	query := `
	SELECT id, user_id, current_streak, longest_streak, last_logged_date, updated_at
	FROM streaks
	WHERE user_id = $1
	`

	st := &streak.Streak{}
	err = s.db.QueryRow(ctx, query, uid).Scan(
		&st.ID,
		&st.UserID,
		&st.CurrentStreak,
		&st.LongestStreak,
		&st.LastLoggedDate,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("streak not found")
		}
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	return st, nil
}

func (s *WaterService) GetGoal(ctx context.Context, userID string) (*goal.Goal, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	query := `
	SELECT id, user_id, goal_amount, updated_at
	FROM goals
	WHERE user_id = $1
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(ctx, query, uid).Scan(&g.ID, &g.UserID, &g.GoalAmount, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return g, nil
}

// UpdateGoal upserts the user's daily goal. Last write wins; no history kept.
func (s *WaterService) UpdateGoal(ctx context.Context, userID string, goalAmount int) (*goal.Goal, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	if goalAmount <= 0 {
		return nil, fmt.Errorf("goal_amount must be a positive integer")
	}

	query := `
	INSERT INTO goals (id, user_id, goal_amount, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id)
	DO UPDATE SET goal_amount = $3, updated_at = NOW()
	RETURNING id, user_id, goal_amount, updated_at
	`

	g := &goal.Goal{}
	err = s.db.QueryRow(ctx, query, uuid.New(), uid, goalAmount).Scan(&g.ID, &g.UserID, &g.GoalAmount, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return g, nil
}

// CheckGoalAchieved compares a day's total against the goal, falling back to
// the default goal amount (without persisting it) when no goal row exists.
func (s *WaterService) CheckGoalAchieved(ctx context.Context, userID string, day time.Time) (*goal.AchievementStatus, error) {
	goalAmount := goal.DefaultGoalAmount

	g, err := s.GetGoal(ctx, userID)
	if err != nil {
		if err.Error() != "goal not found" {
			return nil, err
		}
	} else {
		goalAmount = g.GoalAmount
	}

	daily, err := s.GetDailyLog(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	status := goal.Evaluate(daily.TotalAmount, goalAmount)
	return &status, nil
}

// getLogsBetween fetches logs with start <= timestamp < end, ascending.
func (s *WaterService) getLogsBetween(ctx context.Context, userID string, start, end time.Time) ([]water.WaterLog, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	query := `
	SELECT id, user_id, amount, notes, timestamp
	FROM water_logs
	WHERE user_id = $1
		AND timestamp >= $2
		AND timestamp < $3
	ORDER BY timestamp
	`

	rows, err := s.db.Query(ctx, query, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch water logs: %w", err)
	}
	defer rows.Close()

	var logs []water.WaterLog
	for rows.Next() {
		var l water.WaterLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Amount, &l.Notes, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan water log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating water logs: %w", err)
	}

	return logs, nil
}
