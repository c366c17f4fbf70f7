package auth

import "errors"

// Domain errors returned by the auth service. Handlers translate these to
// HTTP statuses; everything else is an internal error surfaced as a 500.
//
// The authentication failures deliberately collapse distinct root causes
// into one error per endpoint (unknown email and wrong password are both
// ErrInvalidCredentials) so responses cannot be used as an enumeration or
// token oracle. Root causes are logged server-side only.
var (
	// ErrEmailPasswordRequired indicates a missing email or password field
	ErrEmailPasswordRequired = errors.New("email and password are required")

	// ErrEmailInUse indicates a registration with an already-taken email
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials covers unknown email and wrong password alike
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRefreshTokenRequired indicates a missing refreshToken field
	ErrRefreshTokenRequired = errors.New("refresh token is required")

	// ErrRefreshTokenInvalid covers bad signature and expired refresh tokens
	ErrRefreshTokenInvalid = errors.New("invalid or expired refresh token")

	// ErrRefreshTokenNotRecognized covers tokens absent from the ledger and
	// tokens already rotated away or revoked
	ErrRefreshTokenNotRecognized = errors.New("refresh token not recognized")

	// ErrUserNotFound indicates the authenticated user no longer exists
	ErrUserNotFound = errors.New("user not found")
)
