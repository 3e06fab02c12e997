package auth

import "github.com/dcastano/modaluxe-backend/internal/users"

// RegisterRequest contains the payload required to create an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the credentials submitted by the client.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login. The access token
// travels in the X-Modaluxe-Token header, not the body.
type AuthResponse struct {
	AccessToken string         `json:"-"`
	User        *users.UserDTO `json:"user"`
}
