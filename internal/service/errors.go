package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTweetNotFound       = errors.New("tweet not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// msgSystemError is the only message shown to users when something
// unexpected breaks. The real cause stays in the server log under the
// request's trace ID.
const msgSystemError = "something went wrong, please try again"
