package config

// Package config holds the core data structures and type definitions
// used across the application, particularly for representing the Kafka
// cluster snapshot shown by the broker list and the command-line parameters.

import "time"

// UnknownSize marks a broker whose log directory size could not be determined.
const UnknownSize int64 = -1

// NoController marks a snapshot whose controller is not known.
const NoController int32 = -1

// DefaultPageSize is the broker list page size used when no preference is stored.
const DefaultPageSize = 100

// Broker stores information about a single broker as reported by the cluster.
type Broker struct {
	BrokerID   int32
	Address    string
	Rack       string
	LogDirSize int64 // UnknownSize if not available
}

// HasKnownSize reports whether the log directory size was reported.
func (b Broker) HasKnownSize() bool {
	return b.LogDirSize >= 0
}

// ClusterSnapshot is a point-in-time read of the cluster broker inventory.
// ControllerID may reference a broker that is not in Brokers, or be
// NoController.
type ClusterSnapshot struct {
	ControllerID int32
	Brokers      []Broker
	FetchedAt    time.Time
}

// ClientKind selects the Kafka client library used to fetch metadata.
type ClientKind string

const (
	ClientSarama  ClientKind = "sarama"
	ClientKafkaGo ClientKind = "kafka-go"
)

// Params holds all the user-defined parameters gathered from the command line.
type Params struct {
	Bootstrap    []string
	Client       ClientKind
	SnapshotFile string // Offline source, overrides Bootstrap when set
	CacheTTL     time.Duration
	Timeout      time.Duration
	PrefsPath    string
	PageSize     int
	SizeChanger  bool // Page size keys and help in the broker list
	TextMode     bool
	LogFile      string
	LogLevel     string
}
