package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adtyap26/kafka-broker-view/internal/brokers"
	"github.com/charmbracelet/lipgloss"
)

// View implements Page.
func (m *BrokerList) View() string {
	var b strings.Builder

	switch brokers.StateOf(m.snapshot) {
	case brokers.Uninitialized:
		b.WriteString(fmt.Sprintf("  %s Loading cluster info...\n", m.spinner.View()))
		return b.String()

	case brokers.LoadedEmpty:
		b.WriteString(EmptyStyle.Render("No brokers"))
		b.WriteString("\n")
		return b.String()
	}

	// --- Summary ---
	b.WriteString(m.statsView())
	b.WriteString("\n")

	// --- Filter ---
	switch m.mode {
	case inputFilter:
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	default:
		if m.filterText != "" {
			b.WriteString(HelpStyle.Render(fmt.Sprintf("Filter: %q (%d of %d brokers)",
				m.filterText, len(m.filtered), len(m.snapshot.Brokers))))
			b.WriteString("\n")
		}
	}

	// --- Table ---
	b.WriteString(TableBoxStyle.Render(m.table.View()))
	b.WriteString("\n")
	if len(m.rows) == 0 {
		b.WriteString(HelpStyle.Render("  No brokers match the filter"))
		b.WriteString("\n")
	}

	// Tooltip for the controller marker under the cursor
	if row, ok := m.selectedRow(); ok && row.Controller {
		b.WriteString(ControllerStyle.Render(brokers.ControllerMarker))
		b.WriteString(" " + brokers.ControllerTooltip)
		b.WriteString("\n")
	}

	// --- Pagination ---
	b.WriteString(m.paginationView())
	b.WriteString("\n")

	if m.mode == inputPageSize {
		b.WriteString(m.sizeInput.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		}
	}

	// --- Legend ---
	b.WriteString("Legend: ")
	b.WriteString(ControllerStyle.Render(brokers.ControllerMarker))
	b.WriteString(" controller")
	if m.refreshing {
		b.WriteString("  " + m.spinner.View() + " refreshing")
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(helpLine(
		m.keys.SortID, m.keys.PrevPage, m.keys.NextPage,
		m.keys.SmallerPage, m.keys.PageSize, m.keys.Filter, m.keys.ClearFilter,
	)))
	return b.String()
}

func (m *BrokerList) statsView() string {
	s := brokers.Summarize(m.snapshot)

	size := brokers.FormatSize(s.TotalLogDirSize)
	if s.UnknownSizes == s.BrokerCount {
		size = brokers.NotAvailable
	} else if s.UnknownSizes > 0 {
		size += fmt.Sprintf(" (%d N/A)", s.UnknownSizes)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("ControllerID", strconv.FormatInt(int64(s.ControllerID), 10)),
		statBox("Broker Count", strconv.Itoa(s.BrokerCount)),
		statBox("Log Dir Size", size),
	)
}

func statBox(title, value string) string {
	return StatBoxStyle.Render(StatTitleStyle.Render(title) + "\n" + StatValueStyle.Render(value))
}

func (m *BrokerList) paginationView() string {
	start, end := m.page.Bounds(len(m.filtered))
	shown := fmt.Sprintf("%d-%d of %d", start+1, end, len(m.filtered))
	if end == 0 {
		shown = "0 of 0"
	}
	return fmt.Sprintf("Page %s • %s • %d / page", m.paginator.View(), shown, m.page.PageSize)
}
