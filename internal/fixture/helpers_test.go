package fixture

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// mintBlob builds an 82-byte SPL Token mint account
func mintBlob(authority []byte, supply uint64, decimals uint8) []byte {
	blob := make([]byte, MintAccountSize)
	if authority != nil {
		binary.LittleEndian.PutUint32(blob[0:4], 1)
		copy(blob[4:36], authority)
	}
	binary.LittleEndian.PutUint64(blob[36:44], supply)
	blob[44] = decimals
	blob[45] = 1
	return blob
}

func fixtureJSON(t *testing.T, blob []byte) []byte {
	t.Helper()
	doc := map[string]any{
		"pubkey": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"account": map[string]any{
			"lamports":   407438077149,
			"data":       []string{base64.StdEncoding.EncodeToString(blob), "base64"},
			"owner":      "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			"executable": false,
			"rentEpoch":  uint64(18446744073709551615),
			"space":      len(blob),
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func repeatByte(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}
