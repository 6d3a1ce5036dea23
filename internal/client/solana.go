package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/mockmint/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// ErrAccountNotFound is returned when the RPC node has no account at the address
var ErrAccountNotFound = errors.New("account not found")

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
	timeout   time.Duration
}

// NewSolanaClient creates a new Solana client for rpcURL.
// httpClient may be nil, in which case solana-go's default transport is used.
func NewSolanaClient(rpcURL string, timeout time.Duration, httpClient *http.Client) *SolanaClient {
	var rpcClient *rpc.Client
	if httpClient != nil {
		rpcClient = rpc.NewWithCustomRPCClient(jsonrpc.NewClientWithOpts(rpcURL, &jsonrpc.RPCClientOpts{
			HTTPClient: httpClient,
		}))
	} else {
		rpcClient = rpc.New(rpcURL)
	}

	return &SolanaClient{
		rpcClient: rpcClient,
		rpcURL:    rpcURL,
		timeout:   timeout,
	}
}

// GetAccountSnapshot fetches the account at address with base64 data encoding
func (c *SolanaClient) GetAccountSnapshot(ctx context.Context, address string) (*model.AccountSnapshot, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.rpcClient.GetAccountInfoWithOpts(ctx, pubkey, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		if isAccountNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
		}
		return nil, fmt.Errorf("failed to get account info from %s: %w", c.rpcURL, err)
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}

	acct := out.Value
	var data []byte
	if acct.Data != nil {
		data = acct.Data.GetBinary()
	}

	rentEpoch, err := json.Marshal(acct.RentEpoch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rent epoch: %w", err)
	}

	return &model.AccountSnapshot{
		Pubkey: pubkey.String(),
		Account: model.AccountData{
			Lamports:   acct.Lamports,
			Data:       [2]string{base64.StdEncoding.EncodeToString(data), string(solana.EncodingBase64)},
			Owner:      acct.Owner.String(),
			Executable: acct.Executable,
			RentEpoch:  rentEpoch,
			Space:      len(data),
		},
	}, nil
}

// isAccountNotFoundError checks if error indicates that the account doesn't exist
func isAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
