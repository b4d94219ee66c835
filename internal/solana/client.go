package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/lugondev/go-amm/pkg/types"
)

// Client wraps the Solana RPC client
type Client struct {
	rpc *rpc.Client
}

// NewClient creates a new Solana client
func NewClient(endpoint string) *Client {
	return &Client{
		rpc: rpc.New(endpoint),
	}
}

// GetBalance returns the balance of an account in lamports
func (c *Client) GetBalance(ctx context.Context, pubkey solana.PublicKey) (uint64, error) {
	result, err := c.rpc.GetBalance(ctx, pubkey, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return result.Value, nil
}

// GetAccount fetches an account and converts it to the engine's
// account representation.
func (c *Client) GetAccount(ctx context.Context, pubkey solana.PublicKey) (*types.Account, error) {
	result, err := c.rpc.GetAccountInfo(ctx, pubkey)
	if err != nil {
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	if result.Value == nil {
		return nil, fmt.Errorf("account %s not found", pubkey)
	}
	return &types.Account{
		Lamports:   result.Value.Lamports,
		Data:       result.Value.Data.GetBinary(),
		Owner:      result.Value.Owner,
		Executable: result.Value.Executable,
	}, nil
}

// GetTokenAccountBalance returns the raw token balance of a token account
func (c *Client) GetTokenAccountBalance(ctx context.Context, pubkey solana.PublicKey) (string, error) {
	result, err := c.rpc.GetTokenAccountBalance(ctx, pubkey, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get token account balance: %w", err)
	}
	return result.Value.Amount, nil
}

// SendTransaction sends a transaction
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	// RPC client doesn't have a close method, but we include this for future use
	return nil
}
