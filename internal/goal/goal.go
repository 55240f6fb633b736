package goal

import (
	"time"

	"github.com/google/uuid"
)

// DefaultGoalAmount is assumed for users without a stored goal (8 glasses).
const DefaultGoalAmount = 8

type Goal struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	GoalAmount int       `json:"goal_amount" db:"goal_amount"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateGoalRequest struct {
	GoalAmount int `json:"goal_amount" validate:"required,gt=0"`
}

// AchievementStatus is the verdict for one day against the daily goal.
type AchievementStatus struct {
	Achieved    bool `json:"achieved"`
	TotalAmount int  `json:"total_amount"`
	GoalAmount  int  `json:"goal_amount"`
}

// Evaluate compares a day's total against the goal. Hitting the goal exactly
// counts as achieved.
func Evaluate(totalAmount, goalAmount int) AchievementStatus {
	return AchievementStatus{
		Achieved:    totalAmount >= goalAmount,
		TotalAmount: totalAmount,
		GoalAmount:  goalAmount,
	}
}
