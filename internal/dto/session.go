package dto

// LoginRequest mirrors the login form. The password is required but never checked.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
