package models

import "time"

// Response is a reply attached to a tweet.
type Response struct {
	// ResponseID is the internal unique identifier of the reply. On the
	// client it may temporarily hold zero while a speculative entry is shown
	// under its TempID, before the server has confirmed the write.
	ResponseID int64 `json:"id"`

	// TempID is a client-generated identifier for a speculative reply that
	// has not been confirmed by the server yet. Empty for persisted rows.
	TempID string `json:"-"`

	// TweetID is the post this reply belongs to.
	TweetID int64 `json:"tweetId"`

	// UserID is the reply author's account identifier.
	UserID int64 `json:"userId"`

	// Text is the reply body, at most 280 characters.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the reply was created.
	CreatedAt time.Time `json:"createdAt"`

	// User is the author's public identity, joined in by the store.
	User Author `json:"user"`
}

// TableName returns the name of the database table
// associated with the Response model.
func (r Response) TableName() string {
	return "responses"
}
