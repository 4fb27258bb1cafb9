package models

import "time"

// Like records that one user has liked one tweet. The (UserID, TweetID)
// pair is unique; toggling a like deletes or re-creates the row.
type Like struct {
	LikeID    int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TweetID   int64     `json:"tweetId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
