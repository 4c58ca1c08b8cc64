package main

import (
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

// newRootCmd builds the command tree. gen is shared by every subcommand so
// tests can substitute the random source.
func newRootCmd() *cobra.Command {
	return newRootCmdWith(crypto.NewGenerator(nil))
}

func newRootCmdWith(gen *crypto.Generator) *cobra.Command {
	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate passwords and estimate their strength",
		Long:          "passgen draws passwords from the operating system's secure random source and scores passwords by estimated entropy.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(gen),
		newPronounceCmd(gen),
		newAnalyzeCmd(),
		newCharsetCmd(),
		newTokenCmd(),
	)
	return root
}
