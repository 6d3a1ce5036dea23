package main

import (
	"encoding/json"

	"github.com/AlexZinkM/mockmint/solana"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var withMock bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode fixtures as SPL Token mints and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			reports, err := solana.InspectFixtures(cfg, withMock)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		},
	}

	cmd.Flags().BoolVar(&withMock, "mock", false, "also inspect <asset>-mock.json")
	return cmd
}
