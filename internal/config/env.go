package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/mockmint/internal/authority"
	"github.com/AlexZinkM/mockmint/internal/fixture"

	"github.com/kelseyhightower/envconfig"
)

// Prefix for all environment variables, e.g. MOCKMINT_ASSETS
const Prefix = "MOCKMINT"

// Config contains all configuration parameters for the application.
// It is passed explicitly to every operation; there is no global instance.
type Config struct {
	Assets []string `envconfig:"ASSETS" default:"usdc,wbtc"`

	// Mint authority sources, see authority.Source for precedence
	MintAuthority    string `envconfig:"MINT_AUTHORITY" default:"7HJnvkjwb5PV8NsM2qrUNH7KDYN1dQQkXyFXbfbptEBo"`
	AuthorityKeypair string `envconfig:"AUTHORITY_KEYPAIR"`
	AuthorityProgram string `envconfig:"AUTHORITY_PROGRAM"`
	AuthoritySeed    string `envconfig:"AUTHORITY_SEED" default:"mint"`

	AuthorityOffset int `envconfig:"AUTHORITY_OFFSET" default:"4"`
	AuthorityLength int `envconfig:"AUTHORITY_LENGTH" default:"32"`

	FixtureDir     string `envconfig:"FIXTURE_DIR" default:"."`
	MockSuffix     string `envconfig:"MOCK_SUFFIX" default:"-mock"`
	StrictEncoding bool   `envconfig:"STRICT_ENCODING" default:"false"`

	SolanaRPCURL  string            `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	MintAddresses map[string]string `envconfig:"MINT_ADDRESSES" default:"usdc:EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v,wbtc:3NZ9JMVBmGAqocybic2c7LQCJScmgsAZ6vQqTDzcqmJh"`
	RPCTimeout    time.Duration     `envconfig:"RPC_TIMEOUT" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that envconfig cannot
func (c *Config) Validate() error {
	if len(c.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	for _, a := range c.Assets {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("asset names must not be empty")
		}
	}
	if err := c.Window().Validate(); err != nil {
		return err
	}
	if c.AuthorityLength != fixture.MintAuthorityLen {
		return fmt.Errorf("authority length must be %d (a public key), got %d", fixture.MintAuthorityLen, c.AuthorityLength)
	}
	if c.MockSuffix == "" {
		return fmt.Errorf("mock suffix must not be empty, outputs would overwrite inputs")
	}
	return nil
}

// Window returns the patched byte range
func (c *Config) Window() fixture.Window {
	return fixture.Window{Offset: c.AuthorityOffset, Length: c.AuthorityLength}
}

// AuthoritySource returns where the mint authority should be resolved from
func (c *Config) AuthoritySource() authority.Source {
	return authority.Source{
		Base58:      c.MintAuthority,
		KeypairPath: c.AuthorityKeypair,
		ProgramID:   c.AuthorityProgram,
		Seed:        c.AuthoritySeed,
	}
}
