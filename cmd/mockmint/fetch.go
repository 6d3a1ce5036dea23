package main

import (
	"github.com/AlexZinkM/mockmint/internal/client"
	"github.com/AlexZinkM/mockmint/solana"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFetchCmd(a *app) *cobra.Command {
	var rpcURL string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download mint accounts from an RPC node into <asset>.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rpc") {
				cfg.SolanaRPCURL = rpcURL
			}

			solanaClient := client.NewSolanaClient(cfg.SolanaRPCURL, cfg.RPCTimeout, nil)
			written, err := solana.FetchFixtures(cmd.Context(), cfg, solanaClient)
			if err != nil {
				return err
			}
			log.Info().Int("files", len(written)).Str("rpc", cfg.SolanaRPCURL).Msg("done")
			return nil
		},
	}

	cmd.Flags().StringVar(&rpcURL, "rpc", "", "Solana JSON-RPC endpoint (default from MOCKMINT_SOLANA_RPC_URL)")
	return cmd
}
