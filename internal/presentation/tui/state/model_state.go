package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	View          ViewState
	ArticleList   list.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	Heading       string
	StatusMessage string

	// MountID identifies the mount that owns this state. Fetch results
	// carrying another id belong to a previous mount and are dropped.
	MountID   string
	Mounted   bool
	Requested bool
}
