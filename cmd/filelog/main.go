package main

import (
	"fmt"
	"os"

	"github.com/philipp01105/filelog/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "filelog: %v\n", err)
		os.Exit(1)
	}
}
