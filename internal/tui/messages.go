package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-board/models"
)

// NavigateTo switches the router to another page. Payload, if set, is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type authDoneMsg struct {
	username string
	err      error
}

// SignupSuccessNotice is shown on the menu after a completed signup that
// did not auto-navigate.
type SignupSuccessNotice struct {
	Username string
}

type feedLoadedMsg struct {
	feed  models.FeedResponse
	stale bool
	err   error
}

type tweetLoadedMsg struct {
	detail models.TweetDetailResponse
	stale  bool
	err    error
}

type tweetPostedMsg struct {
	state models.FormState
	err   error
}

type likeToggledMsg struct {
	tweetID int64
	err     error
}

type replyPostedMsg struct {
	tweetID int64
	state   models.FormState
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
