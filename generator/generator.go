package generator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/b-harvest/blockchain-config-generator/artifact"
	"github.com/b-harvest/blockchain-config-generator/config"
)

// NodeClient is the part of the node RPC API the generator needs.
type NodeClient interface {
	IsConnected(ctx context.Context) error
	Accounts(ctx context.Context) ([]string, error)
}

// Generator produces the config files for one run.
type Generator struct {
	cfg  config.Config
	node NodeClient
}

// NewGenerator returns a Generator for cfg talking to node.
func NewGenerator(cfg config.Config, node NodeClient) *Generator {
	return &Generator{
		cfg:  cfg,
		node: node,
	}
}

// Accounts checks the node is reachable and returns its accounts.
func (g *Generator) Accounts(ctx context.Context) ([]string, error) {
	if err := g.node.IsConnected(ctx); err != nil {
		return nil, fmt.Errorf("%w at %s: %s", ErrConnectivity, g.cfg.RPCURL, err)
	}

	accounts, err := g.node.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %s", ErrConnectivity, g.cfg.RPCURL, err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w at %s", ErrNoAccounts, g.cfg.RPCURL)
	}

	return accounts, nil
}

// Run resolves accounts and the contract address, then writes both config files.
func (g *Generator) Run(ctx context.Context) error {
	accounts, err := g.Accounts(ctx)
	if err != nil {
		return err
	}
	log.Debug().Int("accounts", len(accounts)).Str("rpc", g.cfg.RPCURL).Msg("fetched node accounts")

	contractAddress, err := artifact.ContractAddress(g.cfg.ArtifactPath, config.DevelopmentNetwork)
	if err != nil {
		return err
	}
	log.Debug().Str("contract", contractAddress).Str("network", config.DevelopmentNetwork).Msg("resolved contract address")

	bc := BuildBlockchainConfig(g.cfg, contractAddress, accounts)
	users := BuildTestUsers(accounts)
	log.Debug().Int("test_users", len(users.TestUsers)).Msg("assembled config")

	return Write(g.cfg.OutputDir, bc, users)
}
