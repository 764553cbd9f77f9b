package cluster

import (
	"context"
	"fmt"
	"os"

	"github.com/adtyap26/kafka-broker-view/internal/config"
	"gopkg.in/yaml.v3"
)

// FileSource reads a snapshot from a YAML file on every fetch, so edits to
// the file show up on the next refresh.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type fileBroker struct {
	BrokerID   int32  `yaml:"brokerId"`
	Address    string `yaml:"address"`
	Rack       string `yaml:"rack"`
	LogDirSize *int64 `yaml:"logDirSize"`
}

type fileSnapshot struct {
	ControllerID *int32       `yaml:"controllerId"`
	Brokers      []fileBroker `yaml:"brokers"`
}

// Fetch implements Source. Brokers without a logDirSize get UnknownSize and a
// snapshot without a controllerId gets NoController.
func (s *FileSource) Fetch(ctx context.Context) (*config.ClusterSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return parseSnapshot(data)
}

func parseSnapshot(data []byte) (*config.ClusterSnapshot, error) {
	var fs fileSnapshot
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	snap := &config.ClusterSnapshot{
		ControllerID: config.NoController,
		Brokers:      make([]config.Broker, 0, len(fs.Brokers)),
	}
	if fs.ControllerID != nil {
		snap.ControllerID = *fs.ControllerID
	}
	for _, b := range fs.Brokers {
		size := config.UnknownSize
		if b.LogDirSize != nil {
			size = *b.LogDirSize
		}
		snap.Brokers = append(snap.Brokers, config.Broker{
			BrokerID:   b.BrokerID,
			Address:    b.Address,
			Rack:       b.Rack,
			LogDirSize: size,
		})
	}
	return snap, nil
}

// Close implements Source.
func (s *FileSource) Close() error {
	return nil
}
