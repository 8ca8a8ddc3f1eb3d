package main

import (
	"context"
	"fmt"
	"os"

	"atvremote/cmd/atvremote/ui"
	"atvremote/config"
	"atvremote/internal/buildinfo"
	"atvremote/internal/logging"
	"atvremote/sdk"

	"github.com/spf13/cobra"
)

var (
	flagSocket        string
	flagDebug         bool
	flagNoInteraction bool
)

func main() {
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "atvremote",
		Short:         "Control an Android TV over the local network",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.ConfigureInteraction(flagNoInteraction)
			level := logging.LevelWarn
			if flagDebug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagSocket, "socket", "", "Daemon unix socket path")
	root.PersistentFlags().BoolVar(&flagNoInteraction, "no-interaction", false, "Disable prompts and colors")

	root.AddCommand(devicesCmd())
	root.AddCommand(connectCmd())
	root.AddCommand(keyCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(disconnectCmd())
	root.AddCommand(pairCodeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}

// socketPath resolves the daemon socket: flag first, then config file.
func socketPath() (string, error) {
	if flagSocket != "" {
		return flagSocket, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Socket, nil
}

func dialClient(ctx context.Context) (*sdk.Client, error) {
	socket, err := socketPath()
	if err != nil {
		return nil, err
	}
	client, err := sdk.Dial(ctx, socket)
	if err != nil {
		return nil, fmt.Errorf("is atvremoted running? %w", err)
	}
	return client, nil
}
