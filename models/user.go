package models

import "time"

// User represents an account entity used for authentication and profile
// display. Identity fields (Email, Username) are immutable after signup and
// unique across the whole table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique sign-in identifier. Restricted to the configured
	// domain allow-list at signup time.
	Email string `json:"email"`

	// Username is the unique public display handle.
	Username string `json:"username"`

	// PasswordHash stores the derived credential value (hash output),
	// never plaintext. It is used only for verification and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Bio is an optional free-form profile text.
	Bio string `json:"bio"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
