package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adtyap26/kafka-broker-view/internal/cluster"
	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/adtyap26/kafka-broker-view/internal/prefs"
	"github.com/adtyap26/kafka-broker-view/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	params    config.Params
	bootstrap string
	client    string
)

var rootCmd = &cobra.Command{
	Use:   "brokerview",
	Short: "Browse the brokers of a Kafka cluster",
	Long: `brokerview shows the broker inventory of a Kafka cluster: broker ids,
addresses, log directory sizes, racks and which broker is the controller.
Press r to refresh, / to filter and 1-4 to sort.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute(ver string) error {
	rootCmd.Version = ver
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&bootstrap, "bootstrap", "localhost:9092",
		"Comma-separated bootstrap broker addresses (host:port)")
	rootCmd.Flags().StringVar(&client, "client", string(config.ClientSarama),
		"Kafka client library: sarama or kafka-go")
	rootCmd.Flags().StringVar(&params.SnapshotFile, "snapshot-file", "",
		"Read the cluster snapshot from a YAML file instead of a live cluster")
	rootCmd.Flags().DurationVar(&params.CacheTTL, "cache-ttl", 5*time.Second,
		"Serve non-forced refreshes from cache for this long")
	rootCmd.Flags().DurationVar(&params.Timeout, "timeout", 10*time.Second,
		"Timeout for a single cluster refresh")
	rootCmd.Flags().StringVar(&params.PrefsPath, "prefs", "",
		"Preferences file (default: user config dir)")
	rootCmd.Flags().IntVar(&params.PageSize, "page-size", config.DefaultPageSize,
		"Page size when no preference is stored")
	rootCmd.Flags().BoolVar(&params.SizeChanger, "size-changer", true,
		"Allow changing the page size from the broker list")
	rootCmd.Flags().BoolVar(&params.TextMode, "text", false,
		"Print the broker list once and exit")
	rootCmd.Flags().StringVar(&params.LogFile, "log-file", "",
		"Write logs to this file (default: discard)")
	rootCmd.Flags().StringVar(&params.LogLevel, "log-level", "info",
		"Log level: debug, info, warn, error")

	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func run(cmd *cobra.Command, args []string) error {
	if err := completeParams(&params); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(params.LogFile, params.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := cluster.NewSource(&params, logger.WithField("component", "source"))
	if err != nil {
		return fmt.Errorf("failed to create cluster source: %w", err)
	}
	store := cluster.NewStore(source, params.CacheTTL, params.Timeout, logger.WithField("component", "cluster"))
	defer store.Close()

	if params.TextMode {
		return showText(cmd.Context(), store, cmd.OutOrStdout())
	}

	prefStore, err := prefs.Open(params.PrefsPath)
	if err != nil {
		return err
	}

	page := tui.NewBrokerList(store, prefStore, params.PageSize, logger.WithField("component", "brokers"))
	page.SetSizeChanger(params.SizeChanger)
	p := tea.NewProgram(tui.NewApp("Kafka Broker View", page), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// completeParams fills derived params from the raw flags and validates them.
func completeParams(p *config.Params) error {
	for _, addr := range strings.Split(bootstrap, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			p.Bootstrap = append(p.Bootstrap, addr)
		}
	}

	p.Client = config.ClientKind(client)
	if p.Client != config.ClientSarama && p.Client != config.ClientKafkaGo {
		return fmt.Errorf("invalid client %q: must be %s or %s", client, config.ClientSarama, config.ClientKafkaGo)
	}
	if p.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", p.PageSize)
	}

	if p.PrefsPath == "" {
		path, err := prefs.DefaultPath()
		if err != nil {
			return err
		}
		p.PrefsPath = path
	}
	return nil
}

// newLogger builds the root logrus entry. The TUI owns the terminal, so logs
// only go to a file when one is requested.
func newLogger(path, level string) (*logrus.Entry, func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetOutput(io.Discard)

	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		closeFn = func() { f.Close() }
	}
	return logger.WithField("app", "brokerview"), closeFn, nil
}

func showText(ctx context.Context, store *cluster.Store, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := store.Refresh(ctx, true); err != nil {
		return fmt.Errorf("failed to fetch cluster info: %w", err)
	}
	return tui.RenderText(w, store.Snapshot())
}
