package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMintFixture(t *testing.T, dir, asset string) {
	t.Helper()
	blob := make([]byte, 82)
	blob[0] = 1
	blob[44] = 6
	blob[45] = 1
	raw, err := json.Marshal(map[string]any{
		"pubkey":  asset,
		"account": map[string]any{"data": []string{base64.StdEncoding.EncodeToString(blob), "base64"}},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, asset+".json"), raw, 0600))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeMintFixture(t, dir, "usdc")
	writeMintFixture(t, dir, "wbtc")

	out, err := run(t, "patch", "--dir", dir, "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.FileExists(t, filepath.Join(dir, "usdc-mock.json"))
	assert.FileExists(t, filepath.Join(dir, "wbtc-mock.json"))
}

func TestPatchCommand_AssetsFlag(t *testing.T) {
	dir := t.TempDir()
	writeMintFixture(t, dir, "sol")

	_, err := run(t, "patch", "--dir", dir, "--assets", "sol", "--log-level", "error")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "sol-mock.json"))
}

func TestPatchCommand_MissingFixture(t *testing.T) {
	_, err := run(t, "patch", "--dir", t.TempDir(), "--log-level", "error")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	writeMintFixture(t, dir, "usdc")

	_, err := run(t, "patch", "--dir", dir, "--assets", "usdc", "--log-level", "error")
	require.NoError(t, err)

	out, err := run(t, "inspect", "--dir", dir, "--assets", "usdc", "--mock", "--log-level", "error")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, false, reports[0]["isMock"])
	assert.Equal(t, true, reports[1]["isMock"])
	assert.Equal(t, "7HJnvkjwb5PV8NsM2qrUNH7KDYN1dQQkXyFXbfbptEBo", reports[1]["mintAuthority"])
}
