package cmd_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/b-harvest/blockchain-config-generator/cmd/configgen/cmd"
	"github.com/b-harvest/blockchain-config-generator/generator"
)

type web3Service struct{}

func (web3Service) ClientVersion() string {
	return "Ganache/v7.9.1/EthereumJS TestRPC/v7.9.1/ethereum-js"
}

type ethService struct {
	accounts []common.Address
}

func (s *ethService) Accounts() []common.Address {
	return s.accounts
}

func startNode(t *testing.T, n int) (string, []common.Address) {
	t.Helper()

	accounts := make([]common.Address, n)
	for i := range accounts {
		accounts[i] = common.BigToAddress(big.NewInt(int64(0xA0 + i)))
	}

	srv := ethrpc.NewServer()
	require.NoError(t, srv.RegisterName("web3", web3Service{}))
	require.NoError(t, srv.RegisterName("eth", &ethService{accounts: accounts}))

	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		srv.Stop()
	})
	return ts.URL, accounts
}

// setup writes an artifact and a config file pointing the output into a temp dir.
func setup(t *testing.T, rpcURL string) (configPath, outDir string) {
	t.Helper()
	dir := t.TempDir()

	artifactPath := filepath.Join(dir, "VotingSystem.json")
	require.NoError(t, os.WriteFile(artifactPath,
		[]byte(`{"contractName":"VotingSystem","networks":{"development":{"address":"0xC0"}}}`), 0o644))

	outDir = filepath.Join(dir, "config")
	configPath = filepath.Join(dir, "configgen.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`output_dir = "`+outDir+`"`), 0o644))

	t.Setenv("BLOCKCHAIN_RPC_URL", rpcURL)
	t.Setenv("ARTIFACT_PATH", artifactPath)
	return configPath, outDir
}

func execute(args ...string) error {
	root := cmd.RootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestRootCmd(t *testing.T) {
	rpcURL, accounts := startNode(t, 120)
	configPath, outDir := setup(t, rpcURL)

	require.NoError(t, execute("--config", configPath, "--log-level", "debug"))

	var bc generator.BlockchainConfig
	bz, err := os.ReadFile(filepath.Join(outDir, generator.BlockchainConfigFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bz, &bc))
	require.Equal(t, generator.BlockchainSettings{
		RpcUrl:               rpcURL,
		WsUrl:                "ws://" + rpcURL[len("http://"):],
		ContractAddress:      "0xC0",
		DefaultSenderAddress: accounts[0].Hex(),
	}, bc.Blockchain)

	var users generator.TestUsersConfig
	bz, err = os.ReadFile(filepath.Join(outDir, generator.TestUsersFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bz, &users))
	require.Len(t, users.TestUsers, 99)
	require.Equal(t, accounts[1].Hex(), users.TestUsers[0])
	require.Equal(t, accounts[99].Hex(), users.TestUsers[98])
}

func TestRootCmdNoAccounts(t *testing.T) {
	rpcURL, _ := startNode(t, 0)
	configPath, outDir := setup(t, rpcURL)

	err := execute("--config", configPath)
	require.ErrorIs(t, err, generator.ErrNoAccounts)
	require.NoDirExists(t, outDir)
}

func TestRootCmdUnreachable(t *testing.T) {
	configPath, outDir := setup(t, "http://127.0.0.1:1")

	err := execute("--config", configPath)
	require.ErrorIs(t, err, generator.ErrConnectivity)
	require.NoDirExists(t, outDir)
}

func TestRootCmdMissingConfig(t *testing.T) {
	err := execute("--config", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	root := cmd.RootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, cmd.Version+"\n", out.String())
}
