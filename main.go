package main

import (
	"os"

	"github.com/byond/leadquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
