package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newGenerateCmd(gen *crypto.Generator) *cobra.Command {
	var (
		length                          int
		count                           int
		charset                         string
		noUpper, noLower, noNum, noSymb bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate passwords from the selected character types, or from --charset.
Length is clamped to [4,128] and count to [1,1000]. With every type disabled
the alphanumeric pool is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				passwords []string
				err       error
			)
			if cmd.Flags().Changed("charset") {
				passwords, err = gen.GenerateMultipleFromPool(count, length, charset)
			} else {
				passwords, err = gen.GenerateMultiple(count, crypto.GeneratorOptions{
					Length:    length,
					Uppercase: !noUpper,
					Lowercase: !noLower,
					Numbers:   !noNum,
					Symbols:   !noSymb,
				})
			}
			if err != nil {
				return err
			}
			return printLines(cmd, passwords)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&length, "length", "l", crypto.DefaultLength, "password length")
	f.IntVarP(&count, "count", "c", 1, "number of passwords")
	f.StringVar(&charset, "charset", "", "custom character pool (empty selects every character type)")
	f.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&noNum, "no-numbers", false, "exclude digits")
	f.BoolVar(&noSymb, "no-symbols", false, "exclude symbols")
	cmd.MarkFlagsMutuallyExclusive("charset", "no-upper")
	cmd.MarkFlagsMutuallyExclusive("charset", "no-lower")
	cmd.MarkFlagsMutuallyExclusive("charset", "no-numbers")
	cmd.MarkFlagsMutuallyExclusive("charset", "no-symbols")
	return cmd
}

func newPronounceCmd(gen *crypto.Generator) *cobra.Command {
	var (
		length    int
		count     int
		noNumbers bool
	)

	cmd := &cobra.Command{
		Use:   "pronounce",
		Short: "Generate pronounceable passwords",
		Long:  "Alternate consonants and vowels, ending with two digits unless --no-numbers is set. Length is clamped to [6,64].",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			passwords, err := gen.GenerateMultiplePronounceable(count, length, !noNumbers)
			if err != nil {
				return err
			}
			return printLines(cmd, passwords)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", crypto.DefaultPronounceableLength, "password length")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "omit the two-digit suffix")
	return cmd
}

func printLines(cmd *cobra.Command, lines []string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
