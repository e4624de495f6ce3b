package main

import (
	"os"

	"github.com/intelligrit/ulysses-guide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
