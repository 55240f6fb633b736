package water

import "time"

// LogWaterRequest is the body of POST /water/log. A nil amount defaults to 1
// unit; a nil timestamp defaults to the server clock at insert time.
type LogWaterRequest struct {
	Amount    *int       `json:"amount,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
