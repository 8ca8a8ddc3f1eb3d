package main

import (
	"fmt"
	"strings"

	"atvremote/cmd/atvremote/ui"

	"github.com/spf13/cobra"
)

func pairCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair-code <code>",
		Short: "Submit the six-hex pairing code shown on the TV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			code := strings.TrimSpace(args[0])
			if err := client.SubmitSecret(cmd.Context(), code); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("code submitted"))
			return nil
		},
	}
}
