package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/linkdot/cmd/linkdot"
	"github.com/arthur-debert/linkdot/pkg/style"
)

func main() {
	rootCmd := linkdot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *linkdot.ExitError
		if !errors.As(err, &exitErr) {
			errorStyle := style.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
