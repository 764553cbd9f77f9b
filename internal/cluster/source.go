package cluster

// Package cluster is the cluster metadata collaborator used by the broker
// list: it fetches snapshots from a Source and keeps the last known one.

import (
	"context"
	"fmt"

	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/sirupsen/logrus"
)

// Source fetches a fresh snapshot of the cluster broker inventory.
type Source interface {
	Fetch(ctx context.Context) (*config.ClusterSnapshot, error)
	Close() error
}

// NewSource builds the Source selected by params.
func NewSource(params *config.Params, log *logrus.Entry) (Source, error) {
	if params.SnapshotFile != "" {
		return NewFileSource(params.SnapshotFile), nil
	}
	if len(params.Bootstrap) == 0 {
		return nil, fmt.Errorf("no bootstrap servers configured")
	}

	switch params.Client {
	case config.ClientSarama, "":
		return NewSaramaSource(params.Bootstrap, params.Timeout, log)
	case config.ClientKafkaGo:
		return NewKafkaGoSource(params.Bootstrap, params.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown client %q", params.Client)
	}
}
