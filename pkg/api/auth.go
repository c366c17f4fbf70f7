package api

import "time"

// User is the externally visible profile shape. Register/login responses
// omit the creation timestamp, /me includes it. The password hash is never
// part of any response.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh and /api/auth/logout;
// the refresh token itself is the credential, no bearer header is required
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is returned by refresh; no user object
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutResponse is returned by logout
type LogoutResponse struct {
	Success bool `json:"success"`
}

// UserResponse is returned by /api/auth/me
type UserResponse struct {
	User User `json:"user"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status string `json:"status"`
}
