package models

// SessionData is the caller identity asserted by the session cookie. It is
// serialized into a single signed cookie value; there is no server-side
// session table, so the cookie is the session of record.
//
// A zero SessionData means "not logged in". Any failure to read or verify
// the cookie must degrade to the zero value, never to an error.
type SessionData struct {
	// IsLoggedIn reports whether the cookie carried a valid, unexpired
	// session. All other fields are meaningful only when it is true.
	IsLoggedIn bool `json:"isLoggedIn"`

	// UserID is the authenticated account identifier.
	UserID int64 `json:"userId,omitempty"`

	// Username is the authenticated account's display handle.
	Username string `json:"username,omitempty"`

	// Email is the authenticated account's sign-in address.
	Email string `json:"email,omitempty"`
}
