package main

import (
	"os"

	"github.com/abhisek/idiomaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
