package user

type RegisterRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	ReminderFrequency *int   `json:"reminder_frequency,omitempty"`
	ActiveHoursStart  *int   `json:"active_hours_start,omitempty"`
	ActiveHoursEnd    *int   `json:"active_hours_end,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UpdateProfileRequest struct {
	Email             *string `json:"email,omitempty"`
	Password          *string `json:"password,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	ReminderFrequency *int    `json:"reminder_frequency,omitempty"`
	ActiveHoursStart  *int    `json:"active_hours_start,omitempty"`
	ActiveHoursEnd    *int    `json:"active_hours_end,omitempty"`
}
