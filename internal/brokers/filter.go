package brokers

import (
	"strings"

	"github.com/adtyap26/kafka-broker-view/internal/config"
)

// Predicate decides whether a broker matches a free-text filter.
type Predicate func(filter string, b config.Broker) bool

// IsMatch reports whether filter is an exact, case-sensitive substring of the
// broker's address or rack.
func IsMatch(filter string, b config.Broker) bool {
	if strings.Contains(b.Address, filter) {
		return true
	}
	if strings.Contains(b.Rack, filter) {
		return true
	}
	return false
}

// Apply runs match over items and hands the matching subset to sink.
// An empty filter passes every item through.
func Apply(items []config.Broker, filter string, match Predicate, sink func([]config.Broker)) {
	if filter == "" {
		sink(items)
		return
	}
	result := make([]config.Broker, 0, len(items))
	for _, b := range items {
		if match(filter, b) {
			result = append(result, b)
		}
	}
	sink(result)
}
