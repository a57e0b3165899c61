package main

import (
	"os"

	"github.com/abhisek/guruji/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
