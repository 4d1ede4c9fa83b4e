package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/blockchain-config-generator/client"
	"github.com/b-harvest/blockchain-config-generator/config"
	"github.com/b-harvest/blockchain-config-generator/generator"
)

var (
	logLevel   string
	configPath string
)

// RootCmd builds the configgen command tree.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "configgen",
		Short: "generate blockchain config files for the API backend",
		Long: `Connects to the blockchain node, reads the deployed contract address from the
build artifact and writes blockchain-config.json and test-users.json.

Environment:
  BLOCKCHAIN_RPC_URL   node RPC endpoint (default http://ganache:8545)
  ARTIFACT_PATH        contract build artifact (default /blockchain/build/contracts/VotingSystem.json)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			err := SetLogger(logLevel)
			if err != nil {
				return fmt.Errorf("set logger: %w", err)
			}

			cfg, err := config.Load(configPath, cmd.Flags().Changed("config"), os.LookupEnv)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return Generate(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", zerolog.InfoLevel.String(), "logging level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "config file path (.toml or .yaml)")

	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}

// Generate runs one generation against the node at cfg.RPCURL.
func Generate(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := client.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("%w at %s: %s", generator.ErrConnectivity, cfg.RPCURL, err)
	}
	defer c.Stop()

	log.Debug().Str("rpc", cfg.RPCURL).Str("artifact", cfg.ArtifactPath).Str("output", cfg.OutputDir).Msg("generating config")

	return generator.NewGenerator(cfg, c).Run(ctx)
}

// SetLogger sets the global zerolog logger writing human readable lines to stdout.
func SetLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Logger()

	return nil
}
