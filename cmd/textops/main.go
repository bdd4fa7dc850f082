package main

import (
	"fmt"
	"os"

	"github.com/textops/textops/cmd/textops/commands"

	// Import packages to ensure their init() functions are called for registration
	_ "github.com/textops/textops/pkg/affix"
	_ "github.com/textops/textops/pkg/flatten"
	_ "github.com/textops/textops/pkg/listcodec"
	_ "github.com/textops/textops/pkg/transform"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "textops: %v\n", err)
		os.Exit(1)
	}
}
