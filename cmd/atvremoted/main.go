package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"atvremote/config"
	"atvremote/daemon"
	"atvremote/internal/buildinfo"
	"atvremote/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := logging.Configure(logging.LevelInfo); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("daemon failed", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		socketPath string
		dataDir    string
		clientName string
		debug      bool
	)

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = &config.Config{}
	}

	cmd := &cobra.Command{
		Use:     "atvremoted",
		Short:   "Android TV remote daemon",
		Version: buildinfo.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			level := cfg.LogLevel
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return daemon.Run(ctx, daemon.Options{
				DataDir:    dataDir,
				SocketPath: socketPath,
				ClientName: clientName,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&socketPath, "socket", cfg.Socket, "Unix socket path")
	cmd.Flags().StringVar(&dataDir, "data-dir", cfg.DataDir, "Identity and preferences directory")
	cmd.Flags().StringVar(&clientName, "client-name", cfg.ClientName, "Name announced to the TV")
	return cmd
}
