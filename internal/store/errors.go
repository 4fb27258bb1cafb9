package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email address is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTweetNotFound is returned when a query or write targets a tweet
	// that does not exist in the database.
	ErrTweetNotFound = errors.New("tweet was not found")

	// ErrAlreadyLiked is returned when inserting a like for a (user, tweet)
	// pair that already has one.
	ErrAlreadyLiked = errors.New("tweet is already liked by user")

	// ErrLikeNotFound is returned when removing a like that does not exist.
	ErrLikeNotFound = errors.New("like was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
