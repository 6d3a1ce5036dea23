package fixture

import (
	"errors"
	"fmt"
)

// SPL Token mint layout: a 4-byte COption tag followed by the 32-byte
// mint authority public key.
const (
	MintAuthorityOffset = 4
	MintAuthorityLen    = 32
)

// MintAuthorityWindow is the byte range holding the mint authority
var MintAuthorityWindow = Window{Offset: MintAuthorityOffset, Length: MintAuthorityLen}

// Window is a fixed byte range of account data
type Window struct {
	Offset int
	Length int
}

// End returns the exclusive end offset
func (w Window) End() int {
	return w.Offset + w.Length
}

// Validate checks that the window is a usable range
func (w Window) Validate() error {
	if w.Offset < 0 {
		return fmt.Errorf("window offset must not be negative, got %d", w.Offset)
	}
	if w.Length <= 0 {
		return fmt.Errorf("window length must be positive, got %d", w.Length)
	}
	return nil
}

// Patch overwrites blob[Offset:End] with value in place.
// value must be exactly Length bytes; blob must be at least End bytes.
func (w Window) Patch(blob, value []byte) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if len(value) != w.Length {
		return fmt.Errorf("patch value is %d bytes, window is %d", len(value), w.Length)
	}
	if len(blob) < w.End() {
		return &BufferTooShortError{Len: len(blob), Need: w.End()}
	}
	copy(blob[w.Offset:w.End()], value)
	return nil
}

// PatchRecord decodes the record's account data, overwrites the window with
// value and stores the result back into data[0]. It returns the new base64.
// With strict set, data[1] must be "base64".
func PatchRecord(rec *Record, w Window, value []byte, strict bool) (string, error) {
	if rec == nil {
		return "", errors.New("nil record")
	}
	if strict {
		enc, err := rec.Encoding()
		if err != nil {
			return "", err
		}
		if enc != EncodingBase64 {
			return "", fmt.Errorf("%w: %q", ErrEncodingTag, enc)
		}
	}

	blob, err := rec.Blob()
	if err != nil {
		return "", err
	}
	if err := w.Patch(blob, value); err != nil {
		return "", err
	}
	return rec.SetBlob(blob)
}
