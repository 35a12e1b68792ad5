package main

import (
	"fmt"
	"os"

	"inventory_agent/internal"
)

func main() {
	if err := internal.RunServer(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
