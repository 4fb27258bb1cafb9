// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/models"
)

type feedMode int

const (
	modeList feedMode = iota
	modeDetail
	modeComposeTweet
	modeComposeReply
)

// feedModel is the Bubble Tea model of the feed browser. The list and the
// post detail render whatever the client service holds locally, so a like or
// a reply shows up immediately and is corrected when the server answers.
type feedModel struct {
	ctx      context.Context
	services *service.ClientServices
	username string

	mode    feedMode
	loading bool
	stale   bool
	status  string
	errMsg  string

	feed models.FeedResponse
	idx  int

	detail      models.TweetDetailResponse
	detailStale bool

	composer textarea.Model

	logout bool
}

func newFeedModel(ctx context.Context, services *service.ClientServices, username string) feedModel {
	composer := textarea.New()
	composer.CharLimit = 280
	composer.SetWidth(60)
	composer.SetHeight(4)

	return feedModel{
		ctx:      ctx,
		services: services,
		username: username,
		loading:  true,
		composer: composer,
	}
}

func (m feedModel) Init() tea.Cmd {
	return m.cmdLoadFeed(1)
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.feed = msg.feed
		m.stale = msg.stale
		if m.idx >= len(m.feed.Tweets) {
			m.idx = len(m.feed.Tweets) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case tweetLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detail = msg.detail
		m.detailStale = msg.stale
		m.mode = modeDetail
		return m, nil

	case likeToggledMsg:
		if msg.err != nil {
			m.errMsg = likeErrorMessage(msg.err)
		} else {
			m.errMsg = ""
		}
		// render whatever the reconciler settled on
		if view, ok := m.services.FeedService.TweetView(msg.tweetID); ok {
			m.detail = view
		}
		return m, nil

	case replyPostedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		} else if !msg.state.Success {
			m.errMsg = firstFormError(msg.state)
		} else {
			m.status = "reply posted"
			m.errMsg = ""
		}
		if view, ok := m.services.FeedService.TweetView(msg.tweetID); ok {
			m.detail = view
		}
		return m, clearStatusAfter(3 * time.Second)

	case tweetPostedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if !msg.state.Success {
			m.errMsg = firstFormError(msg.state)
			return m, nil
		}
		m.status = "tweet posted"
		m.errMsg = ""
		m.mode = modeList
		m.loading = true
		return m, tea.Batch(m.cmdLoadFeed(1), clearStatusAfter(3*time.Second))

	case copiedMsg:
		m.status = "copied to clipboard"
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeComposeTweet || m.mode == modeComposeReply {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m feedModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeComposeTweet || m.mode == modeComposeReply {
		return m.handleComposerKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "o":
		m.logout = true
		return m, tea.Sequence(m.cmdLogout(), tea.Quit)

	case "up", "k":
		if m.mode == modeList && m.idx > 0 {
			m.idx--
		}
		return m, nil

	case "down", "j":
		if m.mode == modeList && m.idx < len(m.feed.Tweets)-1 {
			m.idx++
		}
		return m, nil

	case "left", "h":
		if m.mode == modeList && m.feed.Pagination.Page > 1 {
			m.loading = true
			return m, m.cmdLoadFeed(m.feed.Pagination.Page - 1)
		}
		return m, nil

	case "right", "l":
		if m.mode == modeList && !m.feed.Pagination.IsLastPage {
			m.loading = true
			return m, m.cmdLoadFeed(m.feed.Pagination.Page + 1)
		}
		if m.mode == modeDetail {
			return m, m.cmdToggleLike(m.detail.Tweet.TweetID)
		}
		return m, nil

	case "enter":
		if m.mode == modeList && len(m.feed.Tweets) > 0 {
			m.loading = true
			return m, m.cmdLoadTweet(m.feed.Tweets[m.idx].TweetID)
		}
		return m, nil

	case "esc":
		if m.mode == modeDetail {
			m.mode = modeList
			m.loading = true
			return m, m.cmdLoadFeed(m.feed.Pagination.Page)
		}
		return m, nil

	case "c":
		if m.mode == modeList {
			m.mode = modeComposeTweet
			m.composer.Reset()
			m.composer.Placeholder = "what's happening?"
			return m, m.composer.Focus()
		}
		return m, nil

	case "r":
		if m.mode == modeDetail {
			m.mode = modeComposeReply
			m.composer.Reset()
			m.composer.Placeholder = "write a reply"
			return m, m.composer.Focus()
		}
		return m, nil

	case "g":
		if m.mode == modeList {
			m.loading = true
			return m, m.cmdLoadFeed(m.feed.Pagination.Page)
		}
		if m.mode == modeDetail {
			m.loading = true
			return m, m.cmdLoadTweet(m.detail.Tweet.TweetID)
		}
		return m, nil

	case "y":
		return m, m.cmdCopySelection()
	}

	return m, nil
}

func (m feedModel) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeComposeReply {
			m.mode = modeDetail
		} else {
			m.mode = modeList
		}
		m.errMsg = ""
		return m, nil

	case "ctrl+s", "ctrl+d":
		text := strings.TrimSpace(m.composer.Value())
		if m.mode == modeComposeReply {
			m.mode = modeDetail
			return m, m.cmdPostReply(m.detail.Tweet.TweetID, text)
		}
		m.mode = modeList
		return m, m.cmdPostTweet(text)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m feedModel) View() string {
	switch m.mode {
	case modeComposeTweet:
		return m.viewComposer("New tweet")
	case modeComposeReply:
		return m.viewComposer("Reply to @" + m.detail.Tweet.User.Username)
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m feedModel) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Feed"))
	b.WriteString("  " + counterStyle.Render("@"+m.username))
	if m.stale {
		b.WriteString("  " + staleStyle.Render("(offline copy)"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("loading...\n")
	} else if len(m.feed.Tweets) == 0 {
		b.WriteString("the feed is empty\n")
	}

	for i, tweet := range m.feed.Tweets {
		line := fmt.Sprintf("%s  %s",
			authorStyle.Render("@"+tweet.User.Username),
			singleLine(tweet.Text))
		counters := counterStyle.Render(fmt.Sprintf("  ♥ %d  ↩ %d", tweet.LikeCount, tweet.ResponseCount))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> ") + line + counters + "\n")
		} else {
			b.WriteString("  " + line + counters + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(counterStyle.Render(fmt.Sprintf("page %d/%d · %d tweets",
		m.feed.Pagination.Page, max(m.feed.Pagination.TotalPages, 1), m.feed.Pagination.TotalTweets)))
	b.WriteString("\n")

	m.writeStatus(&b)
	b.WriteString(helpStyle.Render("enter open · ←/→ page · c compose · g refresh · y copy · o logout · q quit"))
	return appStyle.Render(b.String())
}

func (m feedModel) viewDetail() string {
	var b strings.Builder
	tweet := m.detail.Tweet

	b.WriteString(authorStyle.Render("@" + tweet.User.Username))
	if m.detailStale {
		b.WriteString("  " + staleStyle.Render("(offline copy)"))
	}
	b.WriteString("\n\n")
	b.WriteString(tweet.Text + "\n\n")

	like := "♡"
	if m.detail.IsLiked {
		like = "♥"
	}
	b.WriteString(counterStyle.Render(fmt.Sprintf("%s %d   ↩ %d", like, tweet.LikeCount, tweet.ResponseCount)))
	b.WriteString("\n\n")

	if len(m.detail.Responses) > 0 {
		b.WriteString(titleStyle.Render("Replies") + "\n")
		for _, response := range m.detail.Responses {
			author := "@" + response.User.Username
			if response.TempID != "" {
				author = "@" + m.username + " " + staleStyle.Render("(sending...)")
			}
			b.WriteString(authorStyle.Render(author) + "  " + singleLine(response.Text) + "\n")
		}
		b.WriteString("\n")
	}

	m.writeStatus(&b)
	b.WriteString(helpStyle.Render("l like · r reply · g refresh · y copy · esc back · q quit"))
	return appStyle.Render(b.String())
}

func (m feedModel) viewComposer(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.composer.View())
	b.WriteString("\n")
	m.writeStatus(&b)
	b.WriteString(helpStyle.Render("ctrl+s send · esc cancel"))
	return appStyle.Render(b.String())
}

func (m feedModel) writeStatus(b *strings.Builder) {
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString("\n")
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m feedModel) cmdLoadFeed(page int) tea.Cmd {
	return func() tea.Msg {
		feed, stale, err := m.services.FeedService.LoadFeed(m.ctx, page)
		return feedLoadedMsg{feed: feed, stale: stale, err: err}
	}
}

func (m feedModel) cmdLoadTweet(tweetID int64) tea.Cmd {
	return func() tea.Msg {
		detail, stale, err := m.services.FeedService.LoadTweet(m.ctx, tweetID)
		return tweetLoadedMsg{detail: detail, stale: stale, err: err}
	}
}

func (m feedModel) cmdToggleLike(tweetID int64) tea.Cmd {
	return func() tea.Msg {
		err := m.services.FeedService.ToggleLike(m.ctx, tweetID)
		return likeToggledMsg{tweetID: tweetID, err: err}
	}
}

func (m feedModel) cmdPostReply(tweetID int64, text string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.services.FeedService.PostResponse(m.ctx, tweetID, text)
		return replyPostedMsg{tweetID: tweetID, state: state, err: err}
	}
}

func (m feedModel) cmdPostTweet(text string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.services.FeedService.CreateTweet(m.ctx, text)
		return tweetPostedMsg{state: state, err: err}
	}
}

func (m feedModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		_ = m.services.AuthService.Logout(m.ctx)
		return nil
	}
}

func (m feedModel) cmdCopySelection() tea.Cmd {
	var text string
	switch m.mode {
	case modeDetail:
		text = m.detail.Tweet.Text
	default:
		if len(m.feed.Tweets) > 0 {
			text = m.feed.Tweets[m.idx].Text
		}
	}
	if text == "" {
		return nil
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return feedLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// likeErrorMessage keeps the double-tap rejection human.
func likeErrorMessage(err error) string {
	if errors.Is(err, service.ErrMutationInFlight) {
		return "still syncing the previous like, hold on"
	}
	return humanizeServerUnavailableError(err)
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 60 {
		return s[:57] + "..."
	}
	return s
}
