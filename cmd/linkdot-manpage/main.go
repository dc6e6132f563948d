package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkdot/cmd/linkdot"
)

func main() {
	rootCmd := linkdot.NewRootCmd()

	if err := doc.GenMan(rootCmd, linkdot.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
