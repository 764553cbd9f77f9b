package brokers

// Package brokers contains the derived-state logic behind the broker list:
// which columns to show, summary statistics, the filter predicate, sorting,
// pagination and row building. Everything here is a pure function of the
// current snapshot, recomputed on every render.

import (
	"github.com/adtyap26/kafka-broker-view/internal/config"
)

// ViewState describes what the broker list can render for a snapshot.
type ViewState int

const (
	Uninitialized ViewState = iota // Snapshot never loaded
	LoadedEmpty                    // Snapshot loaded, no brokers
	LoadedNonEmpty
)

func (s ViewState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LoadedEmpty:
		return "empty"
	default:
		return "loaded"
	}
}

// StateOf derives the view state from the snapshot alone.
func StateOf(snap *config.ClusterSnapshot) ViewState {
	if snap == nil {
		return Uninitialized
	}
	if len(snap.Brokers) == 0 {
		return LoadedEmpty
	}
	return LoadedNonEmpty
}

// RackCount counts the brokers declaring a non-empty rack. A nil snapshot counts zero.
func RackCount(snap *config.ClusterSnapshot) int {
	if snap == nil {
		return 0
	}
	n := 0
	for _, b := range snap.Brokers {
		if b.Rack != "" {
			n++
		}
	}
	return n
}

// HasRack reports whether the optional rack column should be shown.
func HasRack(snap *config.ClusterSnapshot) bool {
	return RackCount(snap) > 0
}

// Column identifies a broker list column.
type Column int

const (
	ColumnID Column = iota
	ColumnAddress
	ColumnSize
	ColumnRack
)

// ColumnSpec describes how a column is titled and sized in the table.
type ColumnSpec struct {
	Column Column
	Title  string
	Width  int
}

var (
	idColumn      = ColumnSpec{Column: ColumnID, Title: "ID", Width: 10}
	addressColumn = ColumnSpec{Column: ColumnAddress, Title: "Address", Width: 36}
	sizeColumn    = ColumnSpec{Column: ColumnSize, Title: "Size", Width: 12}
	rackColumn    = ColumnSpec{Column: ColumnRack, Title: "Rack", Width: 12}
)

// Columns returns the visible columns, in display order, for the snapshot.
func Columns(snap *config.ClusterSnapshot) []ColumnSpec {
	cols := []ColumnSpec{idColumn, addressColumn, sizeColumn}
	if HasRack(snap) {
		cols = append(cols, rackColumn)
	}
	return cols
}

// Summary holds the statistics shown above the broker table.
type Summary struct {
	ControllerID    int32
	BrokerCount     int
	TotalLogDirSize int64 // Sum of known sizes only
	UnknownSizes    int
}

// Summarize computes the summary statistics. A nil snapshot yields the zero Summary.
func Summarize(snap *config.ClusterSnapshot) Summary {
	if snap == nil {
		return Summary{}
	}
	s := Summary{
		ControllerID: snap.ControllerID,
		BrokerCount:  len(snap.Brokers),
	}
	for _, b := range snap.Brokers {
		if b.HasKnownSize() {
			s.TotalLogDirSize += b.LogDirSize
		} else {
			s.UnknownSizes++
		}
	}
	return s
}
