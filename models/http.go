package models

// Pagination describes the position of one feed page within the whole feed.
// The page size is fixed server-side.
type Pagination struct {
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	IsLastPage  bool `json:"isLastPage"`
	TotalTweets int  `json:"totalTweets"`
}

// FeedResponse is the payload of GET /api/tweets.
type FeedResponse struct {
	Tweets     []Tweet    `json:"tweets"`
	Pagination Pagination `json:"pagination"`
}

// TweetDetailResponse is the payload of GET /api/tweets/{id}. IsLiked
// reflects whether the calling session's user has liked the tweet.
type TweetDetailResponse struct {
	Tweet     Tweet      `json:"tweet"`
	IsLiked   bool       `json:"isLiked"`
	Responses []Response `json:"responses"`
}

// ProfileResponse is the payload of GET /api/profile.
type ProfileResponse struct {
	User User `json:"user"`
}

// APIError is the JSON error envelope used by the read endpoints.
type APIError struct {
	Error string `json:"error"`
}
