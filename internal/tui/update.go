package tui

import (
	"github.com/adtyap26/kafka-broker-view/internal/brokers"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements Page.
func (m *BrokerList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncTable()
		return nil

	case snapshotMsg:
		// Late results after teardown are dropped
		if !m.active {
			return nil
		}
		m.refreshing = false
		m.snapshot = msg.snap
		m.recompute()
		return nil

	case spinner.TickMsg:
		// Let the tick loop die while idle; refresh restarts it
		if m.snapshot != nil && !m.refreshing {
			m.ticking = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch m.mode {
		case inputFilter:
			return m.updateFilterInput(msg)
		case inputPageSize:
			return m.updatePageSizeInput(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return cmd
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// handleKey processes list bindings. Unhandled keys go to the table.
func (m *BrokerList) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.SortID):
		m.toggleSort(brokers.ColumnID)
	case key.Matches(msg, m.keys.SortAddress):
		m.toggleSort(brokers.ColumnAddress)
	case key.Matches(msg, m.keys.SortSize):
		m.toggleSort(brokers.ColumnSize)
	case key.Matches(msg, m.keys.SortRack):
		if !brokers.HasRack(m.snapshot) {
			return nil, true
		}
		m.toggleSort(brokers.ColumnRack)

	case key.Matches(msg, m.keys.PrevPage):
		if m.page.Page > 0 {
			m.page.Page--
			m.recompute()
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.page.Page < m.page.TotalPages(len(m.filtered))-1 {
			m.page.Page++
			m.recompute()
		}

	case key.Matches(msg, m.keys.SmallerPage):
		m.setPageSize(brokers.PrevPageSize(m.page.PageSize))
	case key.Matches(msg, m.keys.LargerPage):
		m.setPageSize(brokers.NextPageSize(m.page.PageSize))
	case key.Matches(msg, m.keys.PageSize):
		m.focusInput(inputPageSize)
		return textinput.Blink, true

	case key.Matches(msg, m.keys.Filter):
		m.focusInput(inputFilter)
		return textinput.Blink, true
	case key.Matches(msg, m.keys.ClearFilter):
		if m.filterText == "" {
			return nil, false
		}
		m.setFilter("")

	default:
		return nil, false
	}
	return nil, true
}

func (m *BrokerList) toggleSort(col brokers.Column) {
	m.sort = m.sort.Toggle(col)
	m.recompute()
}

// setFilter runs the filter harness for a new filter text.
func (m *BrokerList) setFilter(text string) {
	m.filterText = text
	m.page.Page = 0
	m.recompute()
}

// updateFilterInput filters live while typing. Enter keeps the filter,
// Esc clears it.
func (m *BrokerList) updateFilterInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.blurInputs()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.blurInputs()
		m.setFilter("")
		return nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if v := m.filterInput.Value(); v != m.filterText {
		m.setFilter(v)
	}
	return cmd
}

// updatePageSizeInput applies the typed page size on Enter.
func (m *BrokerList) updatePageSizeInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		size, err := parsePageSize(m.sizeInput.Value())
		if err != nil {
			m.err = err // Keep the input open to show the error
			return nil
		}
		m.blurInputs()
		m.setPageSize(size)
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.err = nil
		m.blurInputs()
		return nil
	}

	var cmd tea.Cmd
	m.sizeInput, cmd = m.sizeInput.Update(msg)
	return cmd
}
