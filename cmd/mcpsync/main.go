package main

import (
	"fmt"
	"os"

	"github.com/mcpsync/mcpsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mcpsync: %v\n", err)
		os.Exit(1)
	}
}
