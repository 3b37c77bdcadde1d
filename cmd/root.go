package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/simon/xdoctl/internal/config"
	"github.com/simon/xdoctl/internal/logger"
	"github.com/simon/xdoctl/internal/tui"
	"github.com/simon/xdoctl/internal/xdo"
)

var (
	configPath string
	hostFlag   string
	debugFlag  bool

	cfg *config.Config
	log = logger.Nop()
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:           "xdoctl",
	Short:         "Batch xdotool commands and inspect the desktop",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := logger.ParseLevel(cfg.LogLevel)
		if debugFlag {
			level = zerolog.DebugLevel
		}
		opts := []logger.Option{logger.WithConsole(os.Stderr), logger.WithLevel(level)}
		if cfg.LogFile != "" {
			opts = append(opts, logger.WithFile(cfg.LogFile))
		}
		log, err = logger.New(opts...)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return log.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}
		runner := b.Runner()
		fresh := func() *xdo.Builder {
			return xdo.New(xdo.WithRunner(runner), xdo.WithBinary(binaryFor(hostFlag)), xdo.WithLogger(log))
		}

		p := tea.NewProgram(tui.NewModel(fresh, runner.HostName()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/xdoctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "", "Configured host to run on over SSH")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
