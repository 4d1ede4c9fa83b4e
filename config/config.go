package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pelletier/go-toml"
)

const (
	DefaultConfigPath   = "configgen.toml"
	DefaultRPCURL       = "http://ganache:8545"
	DefaultArtifactPath = "/blockchain/build/contracts/VotingSystem.json"
	DefaultOutputDir    = "/config"

	// DevelopmentNetwork is the artifact network the contract address is read from.
	DevelopmentNetwork = "development"

	EnvRPCURL       = "BLOCKCHAIN_RPC_URL"
	EnvArtifactPath = "ARTIFACT_PATH"
)

// Config is the resolved configuration for a single run.
type Config struct {
	RPCURL       string
	WSURL        string
	ArtifactPath string
	OutputDir    string
}

// fileConfig is the on-disk shape of the config file. Empty values keep the defaults.
type fileConfig struct {
	RPCURL       string `toml:"rpc_url" json:"rpc_url"`
	ArtifactPath string `toml:"artifact_path" json:"artifact_path"`
	OutputDir    string `toml:"output_dir" json:"output_dir"`
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RPCURL:       DefaultRPCURL,
		ArtifactPath: DefaultArtifactPath,
		OutputDir:    DefaultOutputDir,
	}
}

// Read overlays the file at path on the default configuration.
// The file format is picked by extension: .yaml and .yml are YAML, anything else TOML.
func Read(path string) (Config, error) {
	cfg := Default()

	bz, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bz, &fc)
	default:
		err = toml.Unmarshal(bz, &fc)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if fc.RPCURL != "" {
		cfg.RPCURL = fc.RPCURL
	}
	if fc.ArtifactPath != "" {
		cfg.ArtifactPath = fc.ArtifactPath
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with the recognized environment variables.
// Unset and empty variables keep the current value.
func ApplyEnv(cfg Config, lookup LookupFunc) Config {
	if v, ok := lookup(EnvRPCURL); ok && v != "" {
		cfg.RPCURL = v
	}
	if v, ok := lookup(EnvArtifactPath); ok && v != "" {
		cfg.ArtifactPath = v
	}
	return cfg
}

// Load resolves the configuration from defaults, the config file and the environment.
// A missing file is only an error when required is set.
func Load(path string, required bool, lookup LookupFunc) (Config, error) {
	cfg := Default()

	if path != "" {
		c, err := Read(path)
		switch {
		case err == nil:
			cfg = c
		case !required && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	cfg = ApplyEnv(cfg, lookup)
	cfg.WSURL = DeriveWSURL(cfg.RPCURL)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DeriveWSURL swaps a leading http:// scheme for ws://.
func DeriveWSURL(rpcURL string) string {
	if strings.HasPrefix(rpcURL, "http://") {
		return "ws://" + strings.TrimPrefix(rpcURL, "http://")
	}
	return rpcURL
}

// Validate checks that every field needed for a run is set.
func (c Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("rpc url must not be empty")
	}
	if c.ArtifactPath == "" {
		return fmt.Errorf("artifact path must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	return nil
}
