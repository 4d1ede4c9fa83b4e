package generator

const (
	BlockchainConfigFile = "blockchain-config.json"
	TestUsersFile        = "test-users.json"

	// MaxAccounts bounds the accounts considered: the sender plus up to 99 test users.
	MaxAccounts = 100
)

// BlockchainSettings is the connection section consumed by the API backend.
type BlockchainSettings struct {
	RpcUrl               string `json:"RpcUrl"`
	WsUrl                string `json:"WsUrl"`
	ContractAddress      string `json:"ContractAddress"`
	DefaultSenderAddress string `json:"DefaultSenderAddress"`
}

// BlockchainConfig is the document written to blockchain-config.json.
type BlockchainConfig struct {
	Blockchain BlockchainSettings `json:"Blockchain"`
}

// TestUsersConfig is the document written to test-users.json.
type TestUsersConfig struct {
	TestUsers []string `json:"TestUsers"`
}
