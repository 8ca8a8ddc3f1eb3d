package main

import (
	"sort"
	"strings"

	"atvremote"

	"github.com/spf13/cobra"
)

func keyCmd() *cobra.Command {
	names := atvremote.KeyNames()
	sort.Strings(names)

	return &cobra.Command{
		Use:   "key <name>...",
		Short: "Send one or more key presses",
		Long:  "Send key presses to the connected TV.\n\nKeys: " + strings.Join(names, ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]atvremote.Keycode, 0, len(args))
			for _, name := range args {
				key, err := atvremote.ParseKey(strings.ToLower(name))
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}

			client, err := dialClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			for _, key := range keys {
				if err := client.SendKey(cmd.Context(), key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
