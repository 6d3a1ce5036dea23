package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/mockmint/internal/client"
	"github.com/AlexZinkM/mockmint/internal/common"
	"github.com/AlexZinkM/mockmint/internal/config"
	"github.com/AlexZinkM/mockmint/internal/fixture"

	"github.com/rs/zerolog/log"
)

// FetchFixtures downloads the mint account of every configured asset and
// writes it as <dir>/<asset>.json, ready to be patched.
func FetchFixtures(ctx context.Context, cfg *config.Config, solanaClient *client.SolanaClient) ([]string, error) {
	if len(cfg.Assets) == 0 {
		return nil, fmt.Errorf("at least one asset is required")
	}

	// Check every asset has an address before touching the network
	for _, asset := range cfg.Assets {
		if _, ok := cfg.MintAddresses[asset]; !ok {
			return nil, fmt.Errorf("no mint address configured for asset %s", asset)
		}
	}

	written := make([]string, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		address := cfg.MintAddresses[asset]
		snap, err := solanaClient.GetAccountSnapshot(ctx, address)
		if err != nil {
			return written, fmt.Errorf("asset %s: %w", asset, err)
		}

		dst := FixturePath(cfg, asset)
		if err := fixture.SaveSnapshot(dst, snap); err != nil {
			return written, fmt.Errorf("asset %s: %w", asset, err)
		}
		log.Info().
			Str("asset", asset).
			Str("address", address).
			Str("owner", snap.Account.Owner).
			Str("sol", common.LamportsToSOL(snap.Account.Lamports)).
			Int("space", snap.Account.Space).
			Str("to", dst).
			Msg("fixture fetched")
		written = append(written, dst)
	}

	return written, nil
}
