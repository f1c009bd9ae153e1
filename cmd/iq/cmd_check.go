package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dhamidi/isgci/lsp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:           "check <file>...",
		Short:         "Check query files, one query per line",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Check.Jobs
			}
			if jobs < 1 {
				return fmt.Errorf("check: --jobs must be at least 1")
			}

			results := make([][]lsp.Problem, len(args))
			var g errgroup.Group
			g.SetLimit(jobs)
			for i, filename := range args {
				i, filename := i, filename
				g.Go(func() error {
					data, err := os.ReadFile(filename)
					if err != nil {
						return fmt.Errorf("read %s: %w", filename, err)
					}
					results[i] = lsp.Analyze(filename, string(data), a.cfg.Check.Comment)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			var problems []lsp.Problem
			for _, r := range results {
				problems = append(problems, r...)
			}
			sort.SliceStable(problems, func(i, j int) bool {
				if problems[i].Filename != problems[j].Filename {
					return problems[i].Filename < problems[j].Filename
				}
				return problems[i].Line < problems[j].Line
			})
			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if len(problems) > 0 {
				err := fmt.Errorf("%d malformed queries", len(problems))
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to check in parallel")

	return cmd
}
