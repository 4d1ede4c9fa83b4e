package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrNetworkNotFound = errors.New("network not found in artifact")
	ErrAddressNotFound = errors.New("address not found for network")
)

// Artifact is the subset of a Truffle build artifact that is consumed here.
type Artifact struct {
	ContractName string                `json:"contractName"`
	Networks     map[string]Deployment `json:"networks"`
}

// Deployment is a contract deployment recorded under a network id or name.
type Deployment struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash"`
}

// Error is returned for any failure resolving a contract address from an artifact file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to read contract address from %s: %s", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Read loads and decodes the artifact at path.
func Read(path string) (*Artifact, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var a Artifact
	if err := json.Unmarshal(bz, &a); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	return &a, nil
}

// Address returns the deployed address recorded for network.
func (a *Artifact) Address(network string) (string, error) {
	d, ok := a.Networks[network]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNetworkNotFound, network)
	}
	if d.Address == "" {
		return "", fmt.Errorf("%w: %q", ErrAddressNotFound, network)
	}
	return d.Address, nil
}

// ContractAddress reads the artifact at path and returns the address deployed on network.
func ContractAddress(path string, network string) (string, error) {
	a, err := Read(path)
	if err != nil {
		return "", err
	}

	addr, err := a.Address(network)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	return addr, nil
}
