// Package main is the entry point for the payroll CLI.
package main

import (
	"os"

	"payroll/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
