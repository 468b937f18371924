package main

import (
	"os"

	"github.com/msto63/put/cmd/put/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
