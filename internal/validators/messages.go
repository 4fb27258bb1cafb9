package validators

import "fmt"

// User-facing validation messages. Wording is part of the API contract:
// clients display these strings verbatim, and the login failure message must
// stay byte-identical for the unknown-email and wrong-password cases so the
// response does not disclose which one occurred.
const (
	MsgEmailRequired      = "email is required"
	MsgEmailInvalid       = "invalid email address"
	MsgUsernameRequired   = "username is required"
	MsgUsernameTooShort   = "username must be at least 5 characters"
	MsgPasswordRequired   = "password is required"
	MsgPasswordTooShort   = "password must be at least 10 characters"
	MsgPasswordNeedsDigit = "password must contain at least one number"
	MsgEmailTaken         = "this email is already in use"
	MsgUsernameTaken      = "this username is already in use"
	MsgInvalidCredentials = "incorrect email or password"
	MsgTweetRequired      = "tweet text is required"
	MsgTweetTooLong       = "tweets are limited to 280 characters"
	MsgResponseRequired   = "reply text is required"
	MsgResponseTooLong    = "replies are limited to 280 characters"
)

// MsgEmailDomain renders the domain-restriction message for the configured
// allow-listed domain (e.g. "@zod.com").
func MsgEmailDomain(domain string) string {
	return fmt.Sprintf("only %s email addresses are allowed", domain)
}
