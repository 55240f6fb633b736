package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		goalAmount   int
		wantAchieved bool
	}{
		{"below goal", 5, 8, false},
		{"exactly at goal counts", 8, 8, true},
		{"above goal", 12, 8, true},
		{"nothing logged", 0, 8, false},
		{"default goal met", DefaultGoalAmount, DefaultGoalAmount, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(tt.total, tt.goalAmount)
			assert.Equal(t, tt.wantAchieved, status.Achieved)
			assert.Equal(t, tt.total, status.TotalAmount)
			assert.Equal(t, tt.goalAmount, status.GoalAmount)
		})
	}
}
