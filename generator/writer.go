package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// WriteJSON writes v to path as two-space indented JSON, replacing any existing file.
func WriteJSON(path string, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	bz = append(bz, '\n')

	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return err
	}
	return nil
}

// Write creates dir if needed and writes both documents into it.
// A failure on the second file leaves the first one in place.
func Write(dir string, bc BlockchainConfig, users TestUsersConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Path: dir, Err: err}
	}

	for _, f := range []struct {
		name string
		doc  interface{}
	}{
		{BlockchainConfigFile, bc},
		{TestUsersFile, users},
	} {
		path := filepath.Join(dir, f.name)
		if err := WriteJSON(path, f.doc); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
		log.Info().Msgf("%s written", path)
	}

	return nil
}
