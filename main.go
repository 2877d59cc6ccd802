package main

import (
	"os"

	"github.com/esvanberg/voctrain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
