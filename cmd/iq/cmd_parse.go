package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/isgci/format"
	"github.com/dhamidi/isgci/iq"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var file string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse an inclusion query and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read query: %w", err)
				}
				query = strings.TrimRight(string(data), "\r\n")
			case len(args) == 1:
				query = args[0]
			default:
				return fmt.Errorf("parse: expected a query argument or --file")
			}

			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			styled := a.cfg.Output.Color && !noColor
			enc, err := format.New(outputFormat, cmd.OutOrStdout(), styled)
			if err != nil {
				return err
			}

			result := iq.Parse(query)
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if result.State == iq.StateMalformed {
				cmd.SilenceUsage = true
				return fmt.Errorf("malformed query")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().StringVar(&file, "file", "", "read the query from a file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
