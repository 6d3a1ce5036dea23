package authority

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/mockmint/internal/fixture"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// DefaultSeed is the seed minter programs use for their mint authority PDA
const DefaultSeed = "mint"

// Source describes where the mock mint authority comes from.
// Precedence: KeypairPath, then ProgramID (with Seed), then Base58.
type Source struct {
	Base58      string
	KeypairPath string
	ProgramID   string
	Seed        string
}

// Resolve returns the 32-byte mint authority for src
func Resolve(src Source) (solana.PublicKey, error) {
	switch {
	case src.KeypairPath != "":
		return FromKeypairFile(src.KeypairPath)
	case src.ProgramID != "":
		return FromProgramSeed(src.ProgramID, src.Seed)
	case src.Base58 != "":
		return FromBase58(src.Base58)
	default:
		return solana.PublicKey{}, errors.New("no mint authority configured")
	}
}

// FromBase58 decodes a base58 public key and checks it is exactly 32 bytes
func FromBase58(s string) (solana.PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: mint authority %q: %v", fixture.ErrDecode, s, err)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("%w: mint authority decodes to %d bytes, want %d",
			fixture.ErrDecode, len(raw), solana.PublicKeyLength)
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// FromKeypairFile reads a solana-keygen JSON keypair and returns its public key
func FromKeypairFile(path string) (solana.PublicKey, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return solana.PublicKey{}, fmt.Errorf("%w: %s", fixture.ErrFileNotFound, path)
		}
		return solana.PublicKey{}, fmt.Errorf("failed to stat keypair file: %w", err)
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: keypair file %s: %v", fixture.ErrDecode, path, err)
	}
	defer clear(key)

	if len(key) != 64 {
		return solana.PublicKey{}, fmt.Errorf("%w: keypair is %d bytes, want 64", fixture.ErrDecode, len(key))
	}
	return key.PublicKey(), nil
}

// FromProgramSeed derives the program address for a single seed.
// An empty seed defaults to "mint".
func FromProgramSeed(programID, seed string) (solana.PublicKey, error) {
	program, err := FromBase58(programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid program id: %w", err)
	}
	if seed == "" {
		seed = DefaultSeed
	}

	pda, _, err := solana.FindProgramAddress([][]byte{[]byte(seed)}, program)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive program address: %w", err)
	}
	return pda, nil
}
