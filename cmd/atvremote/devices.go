package main

import (
	"fmt"

	"atvremote/cmd/atvremote/ui"

	"github.com/spf13/cobra"
)

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List TVs discovered on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			devices, err := client.Devices(cmd.Context())
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Println(ui.Muted("no TVs found yet, discovery keeps running"))
				return nil
			}
			for _, d := range devices {
				fmt.Printf("%s  %s  %s\n", ui.Bold(d.Name), d.Addr, ui.Muted(d.Host))
			}
			return nil
		},
	}
}
