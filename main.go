package main

import (
	"fmt"
	"os"

	"github.com/amirkhaki/ptrdemo/pkg/config"
	"github.com/amirkhaki/ptrdemo/pkg/demo"
)

func main() {
	// Run every demo with the built-in constants
	r := &demo.Runner{
		Out:    os.Stdout,
		Config: config.Default(),
	}

	if err := r.Run(demo.All()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
