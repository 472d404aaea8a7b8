package state

import "github.com/tesso57/newsview/internal/domain/news"

// Phase is the active display mode of the view.
type Phase int

const (
	// Loading is shown from mount until the request resolves.
	Loading Phase = iota
	// Failed is shown when the request failed in any way.
	Failed
	// Ready is shown when articles were received, even if none.
	Ready
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// ViewState is the data behind the three display modes.
// Exactly one mode is active; Loading never comes back once left.
type ViewState struct {
	Items   []news.Article
	Loading bool
	Err     error
}

// NewViewState returns the state a freshly mounted view starts in.
func NewViewState() ViewState {
	return ViewState{
		Items:   []news.Article{},
		Loading: true,
	}
}

// Phase reports the active display mode.
func (v ViewState) Phase() Phase {
	switch {
	case v.Loading:
		return Loading
	case v.Err != nil:
		return Failed
	default:
		return Ready
	}
}

// Resolve applies the outcome of the single request.
// It returns false and changes nothing if the state already left Loading.
func (v *ViewState) Resolve(items []news.Article, err error) bool {
	if !v.Loading {
		return false
	}
	v.Loading = false
	if err != nil {
		v.Err = err
		v.Items = []news.Article{}
		return true
	}
	if items == nil {
		items = []news.Article{}
	}
	v.Items = items
	return true
}
