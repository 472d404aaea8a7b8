package tui

import (
	"context"
	"testing"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/newsview/internal/application/settings"
	"github.com/tesso57/newsview/internal/application/usecase"
	"github.com/tesso57/newsview/internal/domain/news"
	"github.com/tesso57/newsview/internal/presentation/tui/update"
)

type stubSource struct {
	mock.Mock
}

func (s *stubSource) Articles(ctx context.Context) ([]news.Article, error) {
	args := s.Called(ctx)
	articles, _ := args.Get(0).([]news.Article)
	return articles, args.Error(1)
}

func defaultSettings(t *testing.T) settings.Settings {
	t.Helper()
	var cfg settings.Settings
	parser, err := kong.New(&cfg)
	require.NoError(t, err)
	_, err = parser.Parse([]string{})
	require.NoError(t, err)
	return cfg
}

func newTestModel(t *testing.T, src usecase.ArticleSource) *Model {
	t.Helper()
	m := NewModel(defaultSettings(t), usecase.NewArticleService(src, nil), nil)
	m.openBrowser = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func newArticleServiceForTest() usecase.ArticleService {
	return usecase.NewArticleService(new(stubSource), nil)
}

// runCmd executes cmd and returns the messages it produced, expanding batches
// one level deep.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func fetchedMsgs(msgs []tea.Msg) []update.ArticlesFetchedMsg {
	var out []update.ArticlesFetchedMsg
	for _, msg := range msgs {
		if fetched, ok := msg.(update.ArticlesFetchedMsg); ok {
			out = append(out, fetched)
		}
	}
	return out
}

// mountAndResolve runs Init and feeds the fetch result back into the model.
func mountAndResolve(t *testing.T, m *Model) {
	t.Helper()
	fetched := fetchedMsgs(runCmd(m.Init()))
	require.Len(t, fetched, 1)
	m.Update(fetched[0])
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
