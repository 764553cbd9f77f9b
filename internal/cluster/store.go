package cluster

import (
	"context"
	"sync"
	"time"

	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Store caches the last successfully fetched snapshot. Refresh is safe to
// call from concurrent bubbletea commands; overlapping fetches are shared.
type Store struct {
	source  Source
	ttl     time.Duration
	timeout time.Duration
	log     *logrus.Entry
	now     func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *config.ClusterSnapshot
}

// NewStore creates a Store over source. Non-forced refreshes within ttl of the
// last fetch are served from cache. A zero timeout means no per-fetch timeout.
func NewStore(source Source, ttl, timeout time.Duration, log *logrus.Entry) *Store {
	return &Store{
		source:  source,
		ttl:     ttl,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Snapshot returns the last known snapshot, or nil if none has loaded yet.
func (s *Store) Snapshot() *config.ClusterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh fetches a new snapshot unless a cached one is still fresh and force
// is false. On failure the previous snapshot is kept and the error returned.
func (s *Store) Refresh(ctx context.Context, force bool) error {
	if !force && s.fresh() {
		s.log.Debug("serving cluster snapshot from cache")
		return nil
	}

	_, err, shared := s.group.Do("refresh", func() (interface{}, error) {
		return nil, s.fetch(ctx)
	})
	if shared {
		s.log.Debug("joined in-flight cluster refresh")
	}
	return err
}

func (s *Store) fresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil && s.now().Sub(s.snapshot.FetchedAt) < s.ttl
}

func (s *Store) fetch(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	s.log.Debug("refreshing cluster snapshot")
	snap, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.WithError(err).Warn("cluster refresh failed, keeping last snapshot")
		return err
	}
	snap.FetchedAt = s.now()

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"brokers":    len(snap.Brokers),
		"controller": snap.ControllerID,
		"took":       snap.FetchedAt.Sub(start),
	}).Debug("cluster snapshot refreshed")
	return nil
}

// Close releases the underlying source.
func (s *Store) Close() error {
	return s.source.Close()
}
