package cluster

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/segmentio/kafka-go"
)

// KafkaGoSource reads brokers and the controller with a metadata request.
// kafka-go does not expose log directory sizes, so they are always unknown.
type KafkaGoSource struct {
	client *kafka.Client
}

// NewKafkaGoSource creates a metadata client for the bootstrap addresses.
func NewKafkaGoSource(addrs []string, timeout time.Duration) *KafkaGoSource {
	return &KafkaGoSource{
		client: &kafka.Client{
			Addr:    kafka.TCP(addrs...),
			Timeout: timeout,
		},
	}
}

// Fetch implements Source.
func (s *KafkaGoSource) Fetch(ctx context.Context) (*config.ClusterSnapshot, error) {
	resp, err := s.client.Metadata(ctx, &kafka.MetadataRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	return snapshotFromMetadata(resp), nil
}

func snapshotFromMetadata(resp *kafka.MetadataResponse) *config.ClusterSnapshot {
	snap := &config.ClusterSnapshot{
		ControllerID: config.NoController,
		Brokers:      make([]config.Broker, 0, len(resp.Brokers)),
	}
	for _, b := range resp.Brokers {
		// kafka-go leaves Controller as the zero Broker when the controller
		// id matches no listed broker, which would otherwise read as broker 0.
		if resp.Controller.Host != "" && b.ID == resp.Controller.ID {
			snap.ControllerID = int32(b.ID)
		}
		snap.Brokers = append(snap.Brokers, config.Broker{
			BrokerID:   int32(b.ID),
			Address:    net.JoinHostPort(b.Host, strconv.Itoa(b.Port)),
			Rack:       b.Rack,
			LogDirSize: config.UnknownSize,
		})
	}
	return snap
}

// Close implements Source. The client holds no persistent connection.
func (s *KafkaGoSource) Close() error {
	return nil
}
