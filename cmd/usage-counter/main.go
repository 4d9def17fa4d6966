package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "usage-counter: %v\n", err)
		os.Exit(1)
	}
}
