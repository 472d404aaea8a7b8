// Package tui provides the news view model and its composition.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsview/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/newsview/internal/presentation/tui/components/main"
	"github.com/tesso57/newsview/internal/presentation/tui/components/modal"
	"github.com/tesso57/newsview/internal/presentation/tui/components/status"
	"github.com/tesso57/newsview/internal/presentation/tui/metrics"
	"github.com/tesso57/newsview/internal/presentation/tui/state"
	"github.com/tesso57/newsview/internal/presentation/tui/update"
	"github.com/tesso57/newsview/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Visible: m.state.View.Phase() == state.Ready,
		Title:   m.state.Heading,
		Width:   m.state.ArticleList.Width(),
		Accent:  lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch m.state.View.Phase() {
	case state.Loading:
		body = status.Loading(m.state.Spinner.View())
	case state.Failed:
		body = status.Error(m.state.View.Err, lipgloss.Color(m.settings.Theme.Error))
	case state.Ready:
		body = m.state.ArticleList.View()
	}

	height := update.MainHeight(m.state)
	if m.state.View.Phase() == state.Ready && m.state.ArticleList.Height() > 0 {
		height = m.state.ArticleList.Height() + metrics.HeadingLines
	}

	return mainview.Props{
		Width:  m.state.Width,
		Height: height,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if !m.state.Help.ShowAll {
		return modal.Props{}
	}
	return modal.Props{
		Visible: true,
		Body:    m.state.Help.View(&m.state.Keys),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Border:  lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildFooterProps() string {
	helpView := m.state.Help.ShortHelpView(m.state.Keys.ShortHelp())
	return state.FooterText(m.state.View.Phase(), m.state.StatusMessage, helpView)
}
