package main

import (
	"fmt"
	"os"

	"github.com/TrustedSmartChain/tscscan/cmd/tscscan/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
