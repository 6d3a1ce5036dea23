package solana

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/mockmint/internal/authority"
	"github.com/AlexZinkM/mockmint/internal/config"
	"github.com/AlexZinkM/mockmint/internal/fixture"

	"github.com/rs/zerolog/log"
)

// PatchFixtures writes a mock copy of every configured fixture with the mint
// authority window overwritten. The patched base64 of each fixture is printed
// to out before its file is written. Assets are processed in order and the
// first error aborts the run; files already written are left in place.
func PatchFixtures(cfg *config.Config, out io.Writer) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Decoded once, shared read-only by every asset
	key, err := authority.Resolve(cfg.AuthoritySource())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mint authority: %w", err)
	}
	log.Info().Str("authority", key.String()).Int("offset", cfg.AuthorityOffset).Msg("patching fixtures")

	window := cfg.Window()
	written := make([]string, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		src := FixturePath(cfg, asset)
		dst := MockPath(cfg, asset)

		rec, err := fixture.Load(src)
		if err != nil {
			return written, fmt.Errorf("asset %s: %w", asset, err)
		}

		encoded, err := fixture.PatchRecord(rec, window, key[:], cfg.StrictEncoding)
		if err != nil {
			return written, fmt.Errorf("asset %s: %w", asset, err)
		}

		if _, err := fmt.Fprintln(out, encoded); err != nil {
			return written, fmt.Errorf("failed to write diagnostic output: %w", err)
		}

		if err := rec.Save(dst); err != nil {
			return written, fmt.Errorf("asset %s: %w", asset, err)
		}
		log.Info().Str("asset", asset).Str("from", src).Str("to", dst).Msg("fixture patched")
		written = append(written, dst)
	}

	return written, nil
}
