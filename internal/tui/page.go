package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Page is a view hosted by the App shell.
type Page interface {
	// Activate is called once the page becomes visible. The page registers
	// itself with the host and the refresh signal here.
	Activate(host *PageHost, signal *RefreshSignal) tea.Cmd
	// Deactivate is called on teardown. The page must drop its refresh
	// registration and ignore any results still in flight.
	Deactivate()
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Capturing reports whether the page is consuming raw text input,
	// in which case the shell's single-key bindings are suspended.
	Capturing() bool
}

// Breadcrumb is one entry of the page navigation trail.
type Breadcrumb struct {
	Label string
	Path  string
}

// PageHost holds the title and breadcrumbs registered by the active page.
type PageHost struct {
	title       string
	breadcrumbs []Breadcrumb
}

// SetTitle sets the page title.
func (h *PageHost) SetTitle(title string) {
	h.title = title
}

// AddBreadcrumb appends a breadcrumb.
func (h *PageHost) AddBreadcrumb(label, path string) {
	h.breadcrumbs = append(h.breadcrumbs, Breadcrumb{Label: label, Path: path})
}

// Title returns the registered title.
func (h *PageHost) Title() string {
	return h.title
}

// Breadcrumbs returns the registered breadcrumbs.
func (h *PageHost) Breadcrumbs() []Breadcrumb {
	return h.breadcrumbs
}

func (h *PageHost) reset() {
	h.title = ""
	h.breadcrumbs = nil
}

func (h *PageHost) view() string {
	parts := []string{BreadcrumbStyle.Render("Home")}
	for i, c := range h.breadcrumbs {
		style := BreadcrumbStyle
		if i == len(h.breadcrumbs)-1 {
			style = ActiveBreadcrumbStyle
		}
		parts = append(parts, style.Render(c.Label))
	}
	return strings.Join(parts, HelpStyle.Render(" / "))
}

// RefreshSignal delivers operator-initiated "refresh now" requests to a
// single registered handler. It is only touched from the event loop.
type RefreshSignal struct {
	handler func() tea.Cmd
	gen     uint64
}

// Register installs h, replacing any previous handler. The returned func
// removes h, and is a no-op once another handler has been registered.
func (s *RefreshSignal) Register(h func() tea.Cmd) (unregister func()) {
	s.gen++
	gen := s.gen
	s.handler = h
	return func() {
		if s.gen == gen {
			s.handler = nil
		}
	}
}

// Fire invokes the registered handler, if any.
func (s *RefreshSignal) Fire() tea.Cmd {
	if s.handler == nil {
		return nil
	}
	return s.handler()
}
