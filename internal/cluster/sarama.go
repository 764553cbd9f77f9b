package cluster

import (
	"context"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/sirupsen/logrus"
)

// SaramaSource reads brokers, the controller and log directory sizes through
// the sarama cluster admin API.
type SaramaSource struct {
	admin sarama.ClusterAdmin
	log   *logrus.Entry
}

// NewSaramaSource connects a cluster admin to the bootstrap addresses.
func NewSaramaSource(addrs []string, timeout time.Duration, log *logrus.Entry) (*SaramaSource, error) {
	conf := sarama.NewConfig()
	conf.ClientID = "brokerview"
	// DescribeLogDirs needs at least 1.0
	conf.Version = sarama.V2_1_0_0
	if timeout > 0 {
		conf.Net.DialTimeout = timeout
		conf.Net.ReadTimeout = timeout
		conf.Admin.Timeout = timeout
	}

	admin, err := sarama.NewClusterAdmin(addrs, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create cluster admin for %v: %w", addrs, err)
	}
	return &SaramaSource{admin: admin, log: log}, nil
}

// Fetch implements Source. A failing log-dir request leaves sizes unknown
// instead of failing the whole snapshot.
func (s *SaramaSource) Fetch(ctx context.Context) (*config.ClusterSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	brokers, controllerID, err := s.admin.DescribeCluster()
	if err != nil {
		return nil, fmt.Errorf("failed to describe cluster: %w", err)
	}

	ids := make([]int32, 0, len(brokers))
	for _, b := range brokers {
		ids = append(ids, b.ID())
	}

	sizes := map[int32]int64{}
	if len(ids) > 0 {
		dirs, err := s.admin.DescribeLogDirs(ids)
		if err != nil {
			s.log.WithError(err).Warn("failed to describe log dirs, sizes unavailable")
		} else {
			sizes = sumLogDirs(dirs)
		}
	}

	snap := &config.ClusterSnapshot{
		ControllerID: controllerID,
		Brokers:      make([]config.Broker, 0, len(brokers)),
	}
	for _, b := range brokers {
		size, ok := sizes[b.ID()]
		if !ok {
			size = config.UnknownSize
		}
		snap.Brokers = append(snap.Brokers, config.Broker{
			BrokerID:   b.ID(),
			Address:    b.Addr(),
			Rack:       b.Rack(),
			LogDirSize: size,
		})
	}
	return snap, nil
}

// sumLogDirs totals partition sizes per broker, skipping directories that
// reported an error. Brokers with no healthy directory are left out.
func sumLogDirs(dirs map[int32][]sarama.DescribeLogDirsResponseDirMetadata) map[int32]int64 {
	sizes := make(map[int32]int64, len(dirs))
	for id, brokerDirs := range dirs {
		var total int64
		healthy := false
		for _, d := range brokerDirs {
			if d.ErrorCode != sarama.ErrNoError {
				continue
			}
			healthy = true
			for _, t := range d.Topics {
				for _, p := range t.Partitions {
					total += p.Size
				}
			}
		}
		if healthy {
			sizes[id] = total
		}
	}
	return sizes
}

// Close implements Source.
func (s *SaramaSource) Close() error {
	return s.admin.Close()
}
