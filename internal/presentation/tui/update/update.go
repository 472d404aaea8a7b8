// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/newsview/internal/application/usecase"
	"github.com/tesso57/newsview/internal/domain/news"
	"github.com/tesso57/newsview/internal/presentation/tui/intent"
	"github.com/tesso57/newsview/internal/presentation/tui/presenter"
	"github.com/tesso57/newsview/internal/presentation/tui/state"
	"github.com/tesso57/newsview/internal/presentation/tui/textutil"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Articles    usecase.ArticleService
	OpenBrowser func(string) error
	Unmount     func()
	Logger      *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// ArticlesFetchedMsg is emitted once the single article request resolves.
type ArticlesFetchedMsg struct {
	MountID  string
	Articles []news.Article
	Err      error
}

// LinkOpenedMsg is emitted after handing a link to the system browser.
type LinkOpenedMsg struct {
	URL string
	Err error
}

// FetchArticlesCmd creates a command that loads articles for the given mount.
// ctx is owned by the mount and is cancelled when it goes away.
func FetchArticlesCmd(ctx context.Context, svc usecase.ArticleService, mountID string) tea.Cmd {
	return func() tea.Msg {
		articles, err := svc.Load(ctx)
		return ArticlesFetchedMsg{MountID: mountID, Articles: articles, Err: err}
	}
}

// OpenLinkCmd creates a command that opens url outside the terminal.
func OpenLinkCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if open == nil {
			return LinkOpenedMsg{URL: url, Err: fmt.Errorf("no browser available")}
		}
		return LinkOpenedMsg{URL: url, Err: open(url)}
	}
}

// HandleKeyMsg processes key input. It reports whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		if deps.Unmount != nil {
			deps.Unmount()
		}
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateListSizes(s)
		return nil, true
	}

	if s.Help.ShowAll {
		if msg.Type == tea.KeyEsc {
			s.Help.ShowAll = false
			UpdateListSizes(s)
		}
		return nil, true
	}

	if parsed.Type == intent.Open {
		return openSelected(s, deps), true
	}
	return nil, false
}

func openSelected(s *state.ModelState, deps Deps) tea.Cmd {
	if s.View.Phase() != state.Ready {
		return nil
	}
	item, ok := s.ArticleList.SelectedItem().(*presenter.Item)
	if !ok || item.URL() == "" {
		return nil
	}
	if !textutil.IsWebURL(item.URL()) {
		s.StatusMessage = "Cannot open link: not a web address"
		UpdateListSizes(s)
		return nil
	}
	s.StatusMessage = ""
	return OpenLinkCmd(deps.OpenBrowser, item.URL())
}

// HandleWindowSize stores the terminal size and resizes the list.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleArticlesFetchedMsg applies the request outcome to the view state.
// Results for another mount, or arriving after unmount, are dropped.
// It reports whether the state changed.
func HandleArticlesFetchedMsg(s *state.ModelState, msg ArticlesFetchedMsg, deps Deps) bool {
	log := deps.logger()
	if !s.Mounted || msg.MountID != s.MountID {
		log.Debug("dropping article result for inactive mount", slog.String("mount", msg.MountID))
		return false
	}
	if !s.View.Resolve(msg.Articles, msg.Err) {
		log.Debug("dropping article result after resolution", slog.String("mount", msg.MountID))
		return false
	}

	if msg.Err == nil {
		presenter.ApplyArticleList(&s.ArticleList, s.View.Items)
	}
	UpdateListSizes(s)
	return true
}

// HandleLinkOpenedMsg reports a failed open in the footer.
func HandleLinkOpenedMsg(s *state.ModelState, msg LinkOpenedMsg, deps Deps) {
	if msg.Err == nil {
		s.StatusMessage = ""
		return
	}
	deps.logger().Warn("failed to open link", slog.String("url", msg.URL), slog.Any("error", msg.Err))
	s.StatusMessage = fmt.Sprintf("Failed to open link: %v", msg.Err)
	UpdateListSizes(s)
}

// ConfigureListKeys points the list's navigation at the configured bindings.
func ConfigureListKeys(s *state.ModelState) {
	km := &s.ArticleList.KeyMap
	km.CursorUp = s.Keys.Up
	km.CursorDown = s.Keys.Down
	km.PrevPage = s.Keys.UpPage
	km.NextPage = s.Keys.DownPage
	km.GoToStart = s.Keys.Top
	km.GoToEnd = s.Keys.Bottom
	km.ShowFullHelp = key.NewBinding(key.WithDisabled())
	km.CloseFullHelp = key.NewBinding(key.WithDisabled())
}
