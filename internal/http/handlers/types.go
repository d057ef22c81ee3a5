package handlers

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	Enabled  *bool   `json:"enabled"`
}

// UpdateUserRequest mirrors the admin console's partial update: absent fields
// stay untouched, an empty username counts as not supplied.
type UpdateUserRequest struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Enabled  *bool   `json:"enabled"`
	IsAdmin  *bool   `json:"isAdmin"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
