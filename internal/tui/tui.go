// Package tui implements the terminal client of the feed board on top of
// Bubble Tea. The login flow and the feed loop run as separate programs:
// the first ends once a session cookie is held, the second browses the feed
// until the user quits or logs out.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the menu/login/signup screens until the user holds a valid
// session or quits. The returned username is the authenticated identity.
func (t *TUI) LoginFlow(ctx context.Context) (username string, err error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.resultUsername, nil
}

// MainLoop runs the feed browser. It returns logout=true when the user chose
// to log out rather than quit, so the caller can restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, username string) (logout bool, err error) {
	model := newFeedModel(ctx, t.services, username)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(feedModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
