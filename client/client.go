package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Client is a wrapper for the node's JSON-RPC client.
type Client struct {
	ETHRPC *ethrpc.Client
}

// NewClient creates a new Client for the given RPC endpoint.
// Dialing an http endpoint does not touch the network; use IsConnected for that.
func NewClient(ctx context.Context, rpcURL string) (*Client, error) {
	ethrpcClient, err := ethrpc.DialContext(ctx, rpcURL)
	if err != nil {
		return &Client{}, fmt.Errorf("dial %s: %w", rpcURL, err)
	}

	return &Client{
		ETHRPC: ethrpcClient,
	}, nil
}

// ClientVersion returns the node's client version string.
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	var version string
	if err := c.ETHRPC.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", err
	}
	return version, nil
}

// IsConnected reports an error unless the node answers a request.
func (c *Client) IsConnected(ctx context.Context) error {
	_, err := c.ClientVersion(ctx)
	return err
}

// Accounts returns the accounts managed by the node, in node order,
// as EIP-55 checksummed hex strings.
func (c *Client) Accounts(ctx context.Context) ([]string, error) {
	var accounts []common.Address
	if err := c.ETHRPC.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("eth_accounts: %w", err)
	}

	addrs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		addrs = append(addrs, acc.Hex())
	}
	return addrs, nil
}

// Stop closes the underlying RPC connection.
func (c *Client) Stop() {
	if c.ETHRPC != nil {
		c.ETHRPC.Close()
	}
}
