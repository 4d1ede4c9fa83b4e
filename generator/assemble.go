package generator

import (
	"github.com/b-harvest/blockchain-config-generator/config"
)

// BuildBlockchainConfig assembles the connection document. accounts must not be empty.
func BuildBlockchainConfig(cfg config.Config, contractAddress string, accounts []string) BlockchainConfig {
	return BlockchainConfig{
		Blockchain: BlockchainSettings{
			RpcUrl:               cfg.RPCURL,
			WsUrl:                cfg.WSURL,
			ContractAddress:      contractAddress,
			DefaultSenderAddress: accounts[0],
		},
	}
}

// BuildTestUsers returns the accounts after the sender, truncated to MaxAccounts-1 entries.
func BuildTestUsers(accounts []string) TestUsersConfig {
	n := len(accounts)
	if n > MaxAccounts {
		n = MaxAccounts
	}

	users := []string{}
	if n > 1 {
		users = append(users, accounts[1:n]...)
	}
	return TestUsersConfig{TestUsers: users}
}
