package main

import (
	"os"

	"github.com/dhamidi/isgci/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbosity  int
	logFile    string
	cfg        *config.Config
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	path, optional := a.configPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := cfg.Log.Verbosity
	if cmd.Flags().Changed("verbose") {
		verbosity = a.verbosity
	}
	var logPath *string
	if a.logFile != "" {
		logPath = &a.logFile
	} else if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(verbosity, logPath)
	return nil
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "iq",
		Short:             "Inclusion query tools",
		Version:           version,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(a))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
