package main

import (
	"os"

	"github.com/ffdias/fincli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
