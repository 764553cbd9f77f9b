package tui

import (
	"fmt"
	"io"

	"github.com/adtyap26/kafka-broker-view/internal/brokers"
	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// RenderText writes the broker list once, sorted by ID and unpaginated,
// for non-interactive use.
func RenderText(w io.Writer, snap *config.ClusterSnapshot) error {
	switch brokers.StateOf(snap) {
	case brokers.Uninitialized:
		return fmt.Errorf("no cluster snapshot available")
	case brokers.LoadedEmpty:
		_, err := fmt.Fprintln(w, "No brokers")
		return err
	}

	s := brokers.Summarize(snap)
	if _, err := fmt.Fprintf(w, "Controller: %d  Brokers: %d\n", s.ControllerID, s.BrokerCount); err != nil {
		return err
	}

	cols := brokers.Columns(snap)
	headers := make([]string, 0, len(cols))
	for _, c := range cols {
		headers = append(headers, c.Title)
	}

	sorted := brokers.Sort(snap.Brokers, brokers.DefaultSort())
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, r := range brokers.BuildRows(snap, sorted, cols) {
		t.Row(r.Cells...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
