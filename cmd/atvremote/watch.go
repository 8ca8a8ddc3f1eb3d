package main

import (
	"errors"
	"fmt"
	"io"

	"atvremote/cmd/atvremote/ui"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow connection state changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			stream, err := client.WatchStatus(cmd.Context())
			if err != nil {
				return err
			}
			for {
				st, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					if cmd.Context().Err() != nil {
						return nil
					}
					return err
				}

				line := st.GetState()
				if st.GetDevice() != "" {
					line += " " + ui.Muted(st.GetDevice())
				}
				if st.GetMessage() != "" {
					line += " " + ui.Muted("("+st.GetMessage()+")")
				}
				if st.GetPairing() {
					line += " " + ui.WarnMsg("pairing")
				}
				fmt.Println(line)
			}
		},
	}
}
