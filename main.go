package main

import (
	"os"

	"github.com/CADMonkey21/pivx-rpc-go/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
