package validation

import "strings"

// NormalizeEmail lowercases and trims an email address so that lookups and
// the unique constraint are case-insensitive. Applied at both write and read
// time; the database only ever sees normalized values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
