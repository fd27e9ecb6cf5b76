package model

// CreateUserRequest is sent by an administrator to create an account.
type CreateUserRequest struct {
	UserID     string `json:"user_id"     binding:"required,max=50"`
	Email      string `json:"email"       binding:"required,email,max=254"`
	IsAdmin    bool   `json:"is_admin"`
	IsTeamLead bool   `json:"is_teamlead"`
	IsActive   bool   `json:"is_active"`
}

// RegisterRequest creates an active account with a password.
type RegisterRequest struct {
	UserID   string `json:"user_id"  binding:"required,max=50"`
	Email    string `json:"email"    binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// SetPasswordRequest sets the first password of a pre-created account.
type SetPasswordRequest struct {
	UserID   string `json:"user_id"  binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UpdateUserRequest is a partial update applied by an administrator.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email      *string `json:"email"       binding:"omitempty,email,max=254"`
	IsAdmin    *bool   `json:"is_admin"`
	IsTeamLead *bool   `json:"is_teamlead"`
	IsActive   *bool   `json:"is_active"`
	IsStaff    *bool   `json:"is_staff"`
}

// UsersResponse wraps a list of users.
type UsersResponse struct {
	Users []User `json:"users"`
}

// DetailResponse carries a human readable confirmation.
type DetailResponse struct {
	Detail string `json:"detail"`
}
