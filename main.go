package main

import (
	"os"

	"github.com/designchallenge/gradebook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
