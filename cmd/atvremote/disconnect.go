package main

import (
	"fmt"

	"atvremote/cmd/atvremote/ui"

	"github.com/spf13/cobra"
)

func disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Drop the current TV connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.Disconnect(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("disconnected"))
			return nil
		},
	}
}
