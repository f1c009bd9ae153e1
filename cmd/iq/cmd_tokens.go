package main

import (
	"fmt"

	"github.com/dhamidi/isgci/iqlex"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <query>",
		Short: "Print the tokens of a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := iqlex.Tokenize(args[0])
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
}
