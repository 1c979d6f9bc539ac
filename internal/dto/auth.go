package dto

// RegisterRequest creates a new ledger owner.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates an existing owner.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the session token issued on register/login.
type AuthResponse struct {
	UserID string `json:"userID"`
	Token  string `json:"token"`
}
