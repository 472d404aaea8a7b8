package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tesso57/newsview/internal/application/settings"
	"github.com/tesso57/newsview/internal/application/usecase"
	"github.com/tesso57/newsview/internal/presentation/tui/state"
	"github.com/tesso57/newsview/internal/presentation/tui/update"
	"github.com/tesso57/newsview/internal/presentation/tui/view"
	listview "github.com/tesso57/newsview/internal/presentation/tui/view/list"
)

// Model represents the news view.
type Model struct {
	settings    settings.Settings
	articles    usecase.ArticleService
	logger      *slog.Logger
	openBrowser func(string) error
	state       *state.ModelState

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a mounted news view. The article request is issued by Init.
func NewModel(cfg settings.Settings, articles usecase.ArticleService, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	st := newModelState(cfg)
	return &Model{
		settings:    cfg,
		articles:    articles,
		logger:      logger.With(slog.String("mount", st.MountID)),
		openBrowser: openBrowser,
		state:       st,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Init starts the spinner and issues the one article request for this mount.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, m.mount())
}

func (m *Model) mount() tea.Cmd {
	if !m.state.Mounted || m.state.Requested {
		return nil
	}
	m.state.Requested = true
	m.logger.Debug("view mounted")
	return update.FetchArticlesCmd(m.ctx, m.articles, m.state.MountID)
}

// Close unmounts the view. The in-flight request is cancelled and any
// result that still arrives is discarded. Close is safe to call twice.
func (m *Model) Close() {
	if m.state.Mounted {
		m.logger.Debug("view unmounted", slog.String("phase", m.state.View.Phase().String()))
	}
	m.state.Mounted = false
	m.cancel()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.ArticlesFetchedMsg:
		update.HandleArticlesFetchedMsg(m.state, msg, m.deps())
	case update.LinkOpenedMsg:
		update.HandleLinkOpenedMsg(m.state, msg, m.deps())
	}

	if !m.state.Mounted {
		return m, nil
	}

	if m.state.View.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.View.Phase() == state.Ready {
		m.state.ArticleList, cmd = m.state.ArticleList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Articles:    m.articles,
		OpenBrowser: m.openBrowser,
		Unmount:     m.Close,
		Logger:      m.logger,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		View:        state.NewViewState(),
		ArticleList: newArticleList(cfg),
		Help:        help.New(),
		Spinner:     newSpinner(cfg),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		Heading:     cfg.Heading,
		MountID:     uuid.NewString(),
		Mounted:     true,
	}
	update.ConfigureListKeys(st)
	return st
}

func newArticleList(cfg settings.Settings) list.Model {
	delegate := listview.NewArticleDelegate(lipgloss.Color(cfg.Theme.Accent), lipgloss.Color(cfg.Theme.Muted))
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Articles"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("article", "articles")
	l.DisableQuitKeybindings()
	return l
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}
