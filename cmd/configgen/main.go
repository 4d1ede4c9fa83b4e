package main

import (
	"os"

	"github.com/b-harvest/blockchain-config-generator/cmd/configgen/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
