package models

import "time"

// Author is the subset of user fields embedded into feed payloads.
type Author struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// Tweet represents a single post in the feed, together with the derived
// counters the feed views need. Counters are computed by the store at query
// time and are not columns of the tweets table.
type Tweet struct {
	// TweetID is the internal unique identifier of the post.
	TweetID int64 `json:"id"`

	// UserID is the author's account identifier.
	UserID int64 `json:"userId"`

	// Text is the post body, at most 280 characters.
	Text string `json:"tweet"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`

	// User is the author's public identity, joined in by the store.
	User Author `json:"user"`

	// LikeCount is the number of likes at read time.
	LikeCount int `json:"likeCount"`

	// ResponseCount is the number of replies at read time.
	ResponseCount int `json:"responseCount"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}
