package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the application shell. It owns the page host and the refresh
// signal and forwards everything else to the active page.
type App struct {
	name     string
	host     *PageHost
	signal   *RefreshSignal
	page     Page
	keys     appKeys
	quitting bool
}

// NewApp creates the shell around page.
func NewApp(name string, page Page) App {
	return App{
		name:   name,
		host:   &PageHost{},
		signal: &RefreshSignal{},
		page:   page,
		keys:   defaultAppKeys(),
	}
}

// Init activates the page. Required by Bubble Tea.
func (a App) Init() tea.Cmd {
	a.host.reset()
	return a.page.Activate(a.host, a.signal)
}

// Update handles shell keys and forwards messages to the page. Required by Bubble Tea.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyCtrlC || (!a.page.Capturing() && key.Matches(msg, a.keys.Quit)) {
			a.page.Deactivate()
			a.quitting = true
			return a, tea.Quit
		}
		if !a.page.Capturing() && key.Matches(msg, a.keys.Refresh) {
			return a, a.signal.Fire()
		}
	}
	return a, a.page.Update(msg)
}

// View renders the title, breadcrumbs and page. Required by Bubble Tea.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	title := a.name
	if t := a.host.Title(); t != "" {
		title += " · " + t
	}
	return TitleStyle.Render(title) + "\n" +
		a.host.view() + "\n\n" +
		a.page.View() + "\n" +
		HelpStyle.Render(helpLine(a.keys.Refresh, a.keys.Quit))
}
