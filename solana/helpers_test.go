package solana

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/mockmint/internal/config"

	"github.com/stretchr/testify/require"
)

const mockAuthority = "7HJnvkjwb5PV8NsM2qrUNH7KDYN1dQQkXyFXbfbptEBo"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.FixtureDir = t.TempDir()
	return cfg
}

// mintBlob builds an 82-byte SPL Token mint account
func mintBlob(authority []byte, supply uint64, decimals uint8) []byte {
	blob := make([]byte, 82)
	binary.LittleEndian.PutUint32(blob[0:4], 1)
	copy(blob[4:36], authority)
	binary.LittleEndian.PutUint64(blob[36:44], supply)
	blob[44] = decimals
	blob[45] = 1
	return blob
}

func writeFixture(t *testing.T, cfg *config.Config, asset string, blob []byte) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"pubkey": asset + "-pubkey",
		"account": map[string]any{
			"lamports":   1461600,
			"data":       []string{base64.StdEncoding.EncodeToString(blob), "base64"},
			"owner":      "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			"executable": false,
			"rentEpoch":  361,
		},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FixtureDir, asset+".json"), raw, 0600))
	return raw
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func docBlob(t *testing.T, doc map[string]any) (string, []byte) {
	t.Helper()
	data := doc["account"].(map[string]any)["data"].([]any)
	encoded := data[0].(string)
	blob, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	return encoded, blob
}

func outputLines(buf *bytes.Buffer) []string {
	s := bytes.TrimRight(buf.Bytes(), "\n")
	if len(s) == 0 {
		return nil
	}
	var lines []string
	for _, l := range bytes.Split(s, []byte("\n")) {
		lines = append(lines, string(l))
	}
	return lines
}
