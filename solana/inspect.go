package solana

import (
	"fmt"

	"github.com/AlexZinkM/mockmint/internal/authority"
	"github.com/AlexZinkM/mockmint/internal/common"
	"github.com/AlexZinkM/mockmint/internal/config"
	"github.com/AlexZinkM/mockmint/internal/fixture"
	"github.com/AlexZinkM/mockmint/internal/model"

	"github.com/gagliardetto/solana-go"
)

// InspectFixtures decodes every configured fixture as an SPL Token mint.
// With withMock set, the mock copy of each asset is reported right after it.
func InspectFixtures(cfg *config.Config, withMock bool) ([]model.MintReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	key, err := authority.Resolve(cfg.AuthoritySource())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mint authority: %w", err)
	}

	reports := make([]model.MintReport, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		paths := []string{FixturePath(cfg, asset)}
		if withMock {
			paths = append(paths, MockPath(cfg, asset))
		}

		for _, path := range paths {
			report, err := inspectFixture(asset, path, key)
			if err != nil {
				return reports, fmt.Errorf("asset %s: %w", asset, err)
			}
			reports = append(reports, *report)
		}
	}

	return reports, nil
}

func inspectFixture(asset, path string, mockAuthority solana.PublicKey) (*model.MintReport, error) {
	rec, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	blob, err := rec.Blob()
	if err != nil {
		return nil, err
	}
	mint, err := fixture.DecodeMint(blob)
	if err != nil {
		return nil, err
	}

	report := &model.MintReport{
		Asset:       asset,
		Path:        path,
		Supply:      common.FormatAmount(mint.Supply, int(mint.Decimals)),
		Decimals:    mint.Decimals,
		Initialized: mint.IsInitialized,
	}
	if mint.MintAuthority != nil {
		report.MintAuthority = mint.MintAuthority.String()
		report.IsMock = mint.MintAuthority.Equals(mockAuthority)
	}
	if mint.FreezeAuthority != nil {
		report.FreezeAuthority = mint.FreezeAuthority.String()
	}
	return report, nil
}
