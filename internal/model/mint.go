package model

// MintReport represents one decoded mint fixture
type MintReport struct {
	Asset           string `json:"asset"`
	Path            string `json:"path"`
	MintAuthority   string `json:"mintAuthority,omitempty"`
	FreezeAuthority string `json:"freezeAuthority,omitempty"`
	Supply          string `json:"supply"`
	Decimals        uint8  `json:"decimals"`
	Initialized     bool   `json:"initialized"`
	IsMock          bool   `json:"isMock"` // mint authority equals the configured mock authority
}
