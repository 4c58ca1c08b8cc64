package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/strength"
)

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Estimate the strength of a password",
		Long:  "Analyze the argument, or the first line of standard input when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			a := strength.Analyze(password)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "length\t%d\n", a.Length)
			fmt.Fprintf(tw, "uppercase\t%t\n", a.HasUppercase)
			fmt.Fprintf(tw, "lowercase\t%t\n", a.HasLowercase)
			fmt.Fprintf(tw, "numbers\t%t\n", a.HasNumbers)
			fmt.Fprintf(tw, "symbols\t%t\n", a.HasSymbols)
			fmt.Fprintf(tw, "entropy\t%.2f bits\n", a.Entropy)
			fmt.Fprintf(tw, "strength\t%s\n", a.Strength)
			fmt.Fprintf(tw, "diversity\t%.2f\n", a.Diversity)
			for _, s := range a.Suggestions {
				fmt.Fprintf(tw, "suggestion\t%s\n", s)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

func newCharsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charset",
		Short: "Show the built-in character classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := strength.CharacterSetInfo()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "uppercase\t%d\n", info.Uppercase)
			fmt.Fprintf(tw, "lowercase\t%d\n", info.Lowercase)
			fmt.Fprintf(tw, "digits\t%d\n", info.Digits)
			fmt.Fprintf(tw, "symbols\t%d\n", info.Symbols)
			fmt.Fprintf(tw, "total\t%d\n", info.Total)
			fmt.Fprintf(tw, "entropy per character\t%.4f bits\n", info.EntropyPerChar)
			return tw.Flush()
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		expiry  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator token for the stats endpoint",
		Long:  "Sign an operator bearer token with OPERATOR_SECRET.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cmd.Flags().Changed("expiry") {
				expiry = cfg.TokenExpiry
			}
			token, err := crypto.GenerateToken(subject, cfg.OperatorSecret, expiry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "operator name recorded in the token")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "token lifetime (defaults to TOKEN_EXPIRY)")
	cmd.MarkFlagRequired("subject")
	return cmd
}
