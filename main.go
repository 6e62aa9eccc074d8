package main

import (
	"os"

	"github.com/jfarleigh/certrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
