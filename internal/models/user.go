package models

import (
	"time"
)

// User represents a user of the application.
type User struct {
	UserID         string  `db:"user_id"`
	Email          string  `db:"email"`
	DisplayName    string  `db:"display_name"`
	PasswordHash   *string `db:"password_hash"` // NULL for users who only sign in with Google
	AuthProvider   string  `db:"auth_provider"`
	ProviderUserID *string `db:"provider_user_id"`
	EmailVerified  bool    `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
