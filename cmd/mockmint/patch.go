package main

import (
	"github.com/AlexZinkM/mockmint/solana"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPatchCmd(a *app) *cobra.Command {
	var (
		mintAuthority string
		keypair       string
		program       string
		seed          string
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Write <asset>-mock.json with the mint authority replaced",
		Long: "Reads <asset>.json for every configured asset, overwrites the mint authority\n" +
			"inside account.data and writes <asset>-mock.json. The patched base64 data is\n" +
			"printed to stdout, one line per asset.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("authority") {
				cfg.MintAuthority = mintAuthority
			}
			if flags.Changed("keypair") {
				cfg.AuthorityKeypair = keypair
			}
			if flags.Changed("program") {
				cfg.AuthorityProgram = program
			}
			if flags.Changed("seed") {
				cfg.AuthoritySeed = seed
			}
			if flags.Changed("strict") {
				cfg.StrictEncoding = strict
			}

			written, err := solana.PatchFixtures(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			log.Info().Int("files", len(written)).Msg("done")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&mintAuthority, "authority", "", "mint authority as a base58 public key")
	f.StringVar(&keypair, "keypair", "", "solana-keygen keypair file whose public key becomes the mint authority")
	f.StringVar(&program, "program", "", "program id whose PDA becomes the mint authority")
	f.StringVar(&seed, "seed", "mint", "PDA seed used with --program")
	f.BoolVar(&strict, "strict", false, "fail unless account.data[1] is \"base64\"")

	return cmd
}
