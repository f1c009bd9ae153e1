package main

import (
	"fmt"

	"github.com/dhamidi/isgci/iq"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var printSource bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Verify the embedded EBNF grammar of the query language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := iq.Grammar()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if printSource {
				_, err := cmd.OutOrStdout().Write(iq.GrammarSource())
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d productions, start %s\n", len(g), iq.GrammarStart)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printSource, "print", false, "print the grammar instead of a summary")

	return cmd
}
