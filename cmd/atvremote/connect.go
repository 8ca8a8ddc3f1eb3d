package main

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"atvremote/cmd/atvremote/ui"
	"atvremote/daemon/pb"
	"atvremote/pkg/telemetry"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// connectWait bounds how long the CLI follows the daemon's progress before
// giving up. Pairing involves a human reading a code off a screen.
const connectWait = 3 * time.Minute

// connectClient is the slice of the SDK the connect flow uses.
type connectClient interface {
	Connect(ctx context.Context, name string) error
	ConnectIP(ctx context.Context, addr netip.Addr) error
	SubmitSecret(ctx context.Context, code string) error
	WatchStatus(ctx context.Context) (grpc.ServerStreamingClient[pb.GetStatusResponse], error)
}

func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <name|ip>",
		Short: "Connect to a TV, pairing first when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			out := ui.NewTelemetryOutput()
			defer out.Close()

			op, err := telemetry.Start(cmd.Context(), out.Tracer("atvremote"), "connect "+target)
			if err != nil {
				return err
			}

			err = runConnect(op, client, target)
			op.End(err)
			if err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("connected to %s", target))
			return nil
		},
	}
}

func runConnect(op *telemetry.Operation, client connectClient, target string) error {
	ctx, cancel := context.WithTimeout(op.Context(), connectWait)
	defer cancel()

	err := op.Step(ctx, "request connection", func(ctx context.Context) error {
		if addr, perr := netip.ParseAddr(target); perr == nil {
			return client.ConnectIP(ctx, addr)
		}
		return client.Connect(ctx, target)
	})
	if err != nil {
		return err
	}

	return op.Step(ctx, "establish session", func(ctx context.Context) error {
		return followConnection(ctx, op, client)
	})
}

// followConnection tracks the daemon's status stream until the session is
// established, prompting for the pairing code whenever the TV asks for one.
func followConnection(ctx context.Context, op *telemetry.Operation, client connectClient) error {
	stream, err := client.WatchStatus(ctx)
	if err != nil {
		return err
	}

	prompted := false
	for {
		st, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("status stream: %w", err)
		}

		switch {
		case st.GetState() == "connected":
			return nil
		case st.GetState() == "error":
			return errors.New(st.GetMessage())
		case st.GetPairing():
			if prompted && st.GetMessage() != "" {
				fmt.Println(ui.WarnMsg("%s", st.GetMessage()))
			}
			code, perr := ui.Prompt("pairing code")
			if perr != nil {
				return perr
			}
			prompted = true
			serr := op.Step(ctx, "submit pairing code", func(ctx context.Context) error {
				return client.SubmitSecret(ctx, code)
			})
			if serr != nil {
				fmt.Println(ui.WarnMsg("%v", serr))
			}
		}
	}
}
