package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerName = "sorbit-auth"

// Claims represents the JWT claims carried by both token kinds.
// Subject holds the user ID as a decimal string.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user ID.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}

// Issuer signs and verifies access and refresh tokens. The two kinds use
// independent secrets, so a leaked access token cannot mint new sessions
// and a leaked refresh token cannot authorize API calls directly.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewIssuer creates a token issuer. Both secrets are required; refusing to
// start without them beats failing on the first signing attempt.
func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	if accessSecret == "" {
		return nil, errors.New("access token secret is not configured")
	}
	if refreshSecret == "" {
		return nil, errors.New("refresh token secret is not configured")
	}

	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// SignAccessToken creates a short-lived JWT for direct API access.
func (i *Issuer) SignAccessToken(userID int64, email string) (string, error) {
	token, _, err := sign(i.accessSecret, i.accessTTL, userID, email)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// SignRefreshToken creates a refresh token and returns its expiry taken from
// the token's own exp claim, so the ledger stores exactly what the token
// asserts rather than an independently recomputed value.
func (i *Issuer) SignRefreshToken(userID int64, email string) (string, time.Time, error) {
	token, expiresAt, err := sign(i.refreshSecret, i.refreshTTL, userID, email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, expiresAt, nil
}

// VerifyAccessToken validates signature and expiry of an access token.
func (i *Issuer) VerifyAccessToken(tokenString string) (*Claims, error) {
	return verify(i.accessSecret, tokenString)
}

// VerifyRefreshToken validates signature and expiry of a refresh token.
func (i *Issuer) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return verify(i.refreshSecret, tokenString)
}

func sign(secret []byte, ttl time.Duration, userID int64, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuerName,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func verify(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
