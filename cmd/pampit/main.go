package main

import (
	"os"

	"github.com/Gelotto/cw-pampit-vault/cmd/pampit/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
