package fixture

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go/programs/token"
)

// MintAccountSize is the size of an SPL Token mint account
const MintAccountSize = 82

// DecodeMint decodes an SPL Token mint from raw account data
func DecodeMint(blob []byte) (*token.Mint, error) {
	if len(blob) < MintAccountSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a token mint", ErrParse, len(blob))
	}

	var mint token.Mint
	if err := bin.NewBinDecoder(blob[:MintAccountSize]).Decode(&mint); err != nil {
		return nil, fmt.Errorf("%w: token mint: %v", ErrDecode, err)
	}
	return &mint, nil
}
