package solana

import (
	"path/filepath"

	"github.com/AlexZinkM/mockmint/internal/config"
)

const fixtureExt = ".json"

// FixturePath returns <dir>/<asset>.json
func FixturePath(cfg *config.Config, asset string) string {
	return filepath.Join(cfg.FixtureDir, asset+fixtureExt)
}

// MockPath returns <dir>/<asset><suffix>.json
func MockPath(cfg *config.Config, asset string) string {
	return filepath.Join(cfg.FixtureDir, asset+cfg.MockSuffix+fixtureExt)
}
