package main

import (
	"fmt"

	"atvremote/cmd/atvremote/ui"
	"atvremote/daemon/pb"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the daemon's connection state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			st, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(st)
			return nil
		},
	}
}

func printStatus(st *pb.GetStatusResponse) {
	state := st.GetState()
	switch state {
	case "connected":
		state = ui.SuccessMsg("%s", state)
	case "error":
		state = ui.ErrorMsg("%s", state)
	default:
		state = ui.InfoMsg("%s", state)
	}
	fmt.Println(state)

	if st.GetDevice() != "" {
		fmt.Printf("%s %s\n", ui.Muted("device:"), st.GetDevice())
	}
	if st.GetMessage() != "" {
		fmt.Printf("%s %s\n", ui.Muted("detail:"), st.GetMessage())
	}
	if st.GetPairing() {
		fmt.Println(ui.WarnMsg("waiting for pairing code"))
	}
	if clock := st.GetClock(); clock != "" && clock != "unchecked" && clock != "healthy" {
		fmt.Printf("%s %s\n", ui.Muted("clock:"), ui.WarnMsg("%s", clock))
	}
}
