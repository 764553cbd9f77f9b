package brokers

import (
	"cmp"
	"sort"

	"github.com/adtyap26/kafka-broker-view/internal/config"
)

// SortOrder is the direction applied to the active sort column.
type SortOrder int

const (
	Unsorted SortOrder = iota
	Ascending
	Descending
)

// Indicator is the arrow shown next to a sorted column title.
func (o SortOrder) Indicator() string {
	switch o {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return ""
	}
}

// SortState tracks the single actively sorted column.
type SortState struct {
	Column Column
	Order  SortOrder
}

// DefaultSort is the initial sort: ID ascending.
func DefaultSort() SortState {
	return SortState{Column: ColumnID, Order: Ascending}
}

// Toggle advances the sort for col. Repeated toggles of the same column cycle
// ascending -> descending -> unsorted; a different column starts at ascending.
func (s SortState) Toggle(col Column) SortState {
	if s.Column != col || s.Order == Unsorted {
		return SortState{Column: col, Order: Ascending}
	}
	if s.Order == Ascending {
		return SortState{Column: col, Order: Descending}
	}
	return SortState{Column: col, Order: Unsorted}
}

// OrderFor returns the order shown for col.
func (s SortState) OrderFor(col Column) SortOrder {
	if s.Column != col {
		return Unsorted
	}
	return s.Order
}

// Sort returns a sorted copy of items. The input slice is never modified.
// Unknown sizes sort last in both directions; ties break by broker ID.
func Sort(items []config.Broker, s SortState) []config.Broker {
	out := make([]config.Broker, len(items))
	copy(out, items)
	if s.Order == Unsorted {
		return out
	}

	desc := s.Order == Descending
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if s.Column == ColumnSize && a.HasKnownSize() != b.HasKnownSize() {
			return a.HasKnownSize()
		}

		c := compare(a, b, s.Column)
		if c == 0 {
			return a.BrokerID < b.BrokerID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b config.Broker, col Column) int {
	switch col {
	case ColumnAddress:
		return cmp.Compare(a.Address, b.Address)
	case ColumnSize:
		return cmp.Compare(a.LogDirSize, b.LogDirSize)
	case ColumnRack:
		return cmp.Compare(a.Rack, b.Rack)
	default:
		return cmp.Compare(a.BrokerID, b.BrokerID)
	}
}
