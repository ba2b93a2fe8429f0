package main

import (
	"os"

	"github.com/msto63/easyfmt/cmd/easyfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
