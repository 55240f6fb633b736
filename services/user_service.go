package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waterReminderAPI/internal/goal"
	"waterReminderAPI/internal/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// Register creates the user together with their default goal and an empty
// streak row, all in one transaction.
func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, req.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:                uuid.New().String(),
		Email:             req.Email,
		HashedPassword:    string(hashed),
		IsActive:          true,
		ReminderFrequency: 60,
		ActiveHoursStart:  8,
		ActiveHoursEnd:    22,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if req.ReminderFrequency != nil {
		u.ReminderFrequency = *req.ReminderFrequency
	}
	if req.ActiveHoursStart != nil {
		u.ActiveHoursStart = *req.ActiveHoursStart
	}
	if req.ActiveHoursEnd != nil {
		u.ActiveHoursEnd = *req.ActiveHoursEnd
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
	INSERT INTO users (id, email, hashed_password, is_active, reminder_frequency, active_hours_start, active_hours_end, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(ctx, query,
		u.ID,
		u.Email,
		u.HashedPassword,
		u.IsActive,
		u.ReminderFrequency,
		u.ActiveHoursStart,
		u.ActiveHoursEnd,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// New accounts start with the default goal and a zero streak.
	_, err = tx.Exec(ctx, `
	INSERT INTO goals (id, user_id, goal_amount, updated_at)
	VALUES ($1, $2, $3, NOW())
	`, uuid.New(), u.ID, goal.DefaultGoalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to create default goal: %w", err)
	}

	_, err = tx.Exec(ctx, `
	INSERT INTO streaks (id, user_id, current_streak, longest_streak, last_logged_date, updated_at)
	VALUES ($1, $2, 0, 0, NULL, NOW())
	`, uuid.New(), u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create streak: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return u, nil
}

// Authenticate verifies email and password, returning the user when valid.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if !u.IsActive {
		return nil, fmt.Errorf("user account is inactive")
	}

	return u, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*user.User, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	query := `
	SELECT id, email, hashed_password, is_active, reminder_frequency, active_hours_start, active_hours_end, created_at, updated_at
	FROM users
	WHERE id = $1
	`

	u := &user.User{}
	err = s.db.QueryRow(ctx, query, uid).Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&u.ReminderFrequency,
		&u.ActiveHoursStart,
		&u.ActiveHoursEnd,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *user.UpdateProfileRequest) (*user.User, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	var hashed *string
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
		}
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hs := string(h)
		hashed = &hs
	}

	query := `
	UPDATE users
	SET
		email = COALESCE($2, email),
		hashed_password = COALESCE($3, hashed_password),
		is_active = COALESCE($4, is_active),
		reminder_frequency = COALESCE($5, reminder_frequency),
		active_hours_start = COALESCE($6, active_hours_start),
		active_hours_end = COALESCE($7, active_hours_end),
		updated_at = NOW()
	WHERE id = $1
	RETURNING id, email, hashed_password, is_active, reminder_frequency, active_hours_start, active_hours_end, created_at, updated_at
	`

	u := &user.User{}
	err = s.db.QueryRow(ctx, query,
		uid,
		req.Email,
		hashed,
		req.IsActive,
		req.ReminderFrequency,
		req.ActiveHoursStart,
		req.ActiveHoursEnd,
	).Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&u.ReminderFrequency,
		&u.ActiveHoursStart,
		&u.ActiveHoursEnd,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id")
	}

	result, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (s *UserService) getByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
	SELECT id, email, hashed_password, is_active, reminder_frequency, active_hours_start, active_hours_end, created_at, updated_at
	FROM users
	WHERE email = $1
	`

	u := &user.User{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&u.ReminderFrequency,
		&u.ActiveHoursStart,
		&u.ActiveHoursEnd,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}
