package main

import (
	"os"

	"github.com/msto63/mdwx/cmd/mdwx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
