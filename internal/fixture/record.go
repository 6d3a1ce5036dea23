package fixture

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	// EncodingBase64 is the only data[1] tag the patcher knows how to decode
	EncodingBase64 = "base64"

	keyAccount = "account"
	keyData    = "data"
)

// Record is an account fixture as written by `solana account --output json`.
// Only account.data is interpreted; every other field is kept as raw JSON
// and written back unchanged.
type Record struct {
	fields  map[string]json.RawMessage
	account map[string]json.RawMessage
	data    []json.RawMessage
}

// Parse decodes a fixture document
func Parse(raw []byte) (*Record, error) {
	// Skip UTF-8 BOM if present
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		raw = raw[3:]
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec.fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	accountRaw, ok := rec.fields[keyAccount]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrParse, keyAccount)
	}
	if err := json.Unmarshal(accountRaw, &rec.account); err != nil || rec.account == nil {
		return nil, fmt.Errorf("%w: %q is not an object", ErrParse, keyAccount)
	}

	dataRaw, ok := rec.account[keyData]
	if !ok {
		return nil, fmt.Errorf("%w: missing account.%s array", ErrParse, keyData)
	}
	if err := json.Unmarshal(dataRaw, &rec.data); err != nil || len(rec.data) == 0 {
		return nil, fmt.Errorf("%w: account.%s is not a non-empty array", ErrParse, keyData)
	}

	return &rec, nil
}

// Load reads and parses the fixture at path
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	rec, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Data returns the encoded account data, data[0]
func (r *Record) Data() (string, error) {
	var s string
	if err := json.Unmarshal(r.data[0], &s); err != nil {
		return "", fmt.Errorf("%w: account.data[0] is not a string", ErrParse)
	}
	return s, nil
}

// Encoding returns the data[1] tag, or "" when the record has none
func (r *Record) Encoding() (string, error) {
	if len(r.data) < 2 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(r.data[1], &s); err != nil {
		return "", fmt.Errorf("%w: account.data[1] is not a string", ErrParse)
	}
	return s, nil
}

// Blob decodes data[0] from base64
func (r *Record) Blob() ([]byte, error) {
	s, err := r.Data()
	if err != nil {
		return nil, err
	}
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: account data: %v", ErrDecode, err)
	}
	return blob, nil
}

// SetBlob replaces data[0] with the base64 encoding of blob and returns it
func (r *Record) SetBlob(blob []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(blob)
	raw, err := json.Marshal(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to marshal account data: %w", err)
	}
	r.data[0] = raw
	return encoded, nil
}

// Field returns a top-level field as raw JSON
func (r *Record) Field(name string) (json.RawMessage, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// MarshalJSON rebuilds the document from the raw fields and the current data array
func (r *Record) MarshalJSON() ([]byte, error) {
	dataRaw, err := json.Marshal(r.data)
	if err != nil {
		return nil, err
	}

	account := make(map[string]json.RawMessage, len(r.account))
	for k, v := range r.account {
		account[k] = v
	}
	account[keyData] = dataRaw

	accountRaw, err := json.Marshal(account)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage, len(r.fields))
	for k, v := range r.fields {
		fields[k] = v
	}
	fields[keyAccount] = accountRaw

	return json.Marshal(fields)
}

// Save writes the record to path, creating or truncating the file
func (r *Record) Save(path string) error {
	return writeJSON(path, r)
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
