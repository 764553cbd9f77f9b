package brokers

import (
	"strconv"

	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/dustin/go-humanize"
)

// NotAvailable is rendered for values the cluster did not report.
const NotAvailable = "N/A"

// ControllerMarker is appended to the ID cell of the controller broker.
const ControllerMarker = "♛"

// ControllerTooltip explains the controller marker.
const ControllerTooltip = "This broker is the current controller of the cluster"

// Row is one rendered table row.
type Row struct {
	Key        string // brokerId, stable across refreshes
	Cells      []string
	Controller bool
}

// FormatSize renders a byte count in decimal units, or NotAvailable if unknown.
func FormatSize(size int64) string {
	if size < 0 {
		return NotAvailable
	}
	return humanize.Bytes(uint64(size))
}

// IsController reports whether b is the snapshot's controller.
func IsController(snap *config.ClusterSnapshot, b config.Broker) bool {
	return snap != nil && b.BrokerID == snap.ControllerID
}

// BuildRows renders items into cells for the given columns.
func BuildRows(snap *config.ClusterSnapshot, items []config.Broker, cols []ColumnSpec) []Row {
	rows := make([]Row, 0, len(items))
	for _, b := range items {
		ctrl := IsController(snap, b)
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, cell(b, c.Column, ctrl))
		}
		rows = append(rows, Row{
			Key:        strconv.FormatInt(int64(b.BrokerID), 10),
			Cells:      cells,
			Controller: ctrl,
		})
	}
	return rows
}

func cell(b config.Broker, col Column, ctrl bool) string {
	switch col {
	case ColumnID:
		id := strconv.FormatInt(int64(b.BrokerID), 10)
		if ctrl {
			return id + " " + ControllerMarker
		}
		return id
	case ColumnAddress:
		return b.Address
	case ColumnSize:
		return FormatSize(b.LogDirSize)
	case ColumnRack:
		return b.Rack
	}
	return ""
}
