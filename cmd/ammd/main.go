package main

import (
	"os"

	"github.com/lugondev/go-amm/cmd/ammd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
