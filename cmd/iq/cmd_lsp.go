package main

import (
	"github.com/dhamidi/isgci/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for query files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(lsp.Options{
				Name:    a.cfg.LSP.Name,
				Version: version,
				Comment: a.cfg.Check.Comment,
				Debug:   a.cfg.LSP.Debug,
			})
			return server.RunStdio()
		},
	}
}
