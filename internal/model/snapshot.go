package model

import "encoding/json"

// AccountSnapshot represents the `solana account --output json` file structure
type AccountSnapshot struct {
	Pubkey  string      `json:"pubkey"`
	Account AccountData `json:"account"`
}

// AccountData is the account part of a snapshot
type AccountData struct {
	Lamports   uint64          `json:"lamports"`
	Data       [2]string       `json:"data"` // [base64 payload, "base64"]
	Owner      string          `json:"owner"`
	Executable bool            `json:"executable"`
	RentEpoch  json.RawMessage `json:"rentEpoch"` // u64::MAX does not fit in a float64
	Space      int             `json:"space"`
}
