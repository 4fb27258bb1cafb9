package validators

import "github.com/MKhiriev/go-feed-board/models"

// MaxPostLength is the upper bound for both tweets and replies, counted in
// runes so multi-byte text is not penalized.
const MaxPostLength = 280

// FeedValidator checks tweet and reply bodies.
type FeedValidator struct{}

// NewFeedValidator constructs a [FeedValidator].
func NewFeedValidator() *FeedValidator {
	return &FeedValidator{}
}

// ValidateTweet checks a tweet body: presence, then length.
func (v *FeedValidator) ValidateTweet(text string) FieldErrors {
	switch {
	case text == "":
		return FieldErrors{models.FieldTweet: MsgTweetRequired}
	case len([]rune(text)) > MaxPostLength:
		return FieldErrors{models.FieldTweet: MsgTweetTooLong}
	}
	return nil
}

// ValidateResponse checks a reply body: presence, then length.
func (v *FeedValidator) ValidateResponse(text string) FieldErrors {
	switch {
	case text == "":
		return FieldErrors{models.FieldText: MsgResponseRequired}
	case len([]rune(text)) > MaxPostLength:
		return FieldErrors{models.FieldText: MsgResponseTooLong}
	}
	return nil
}
