// Command yagicalc designs DL6WU long-boom Yagi antennas from the command line.
package main

import (
	stdlog "log"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "1.0.0"

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	log     *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newConfig(), log: log.New()}

	root := &cobra.Command{
		Use:   "yagicalc",
		Short: "DL6WU long-boom Yagi-Uda antenna calculator",
		Long: `yagicalc computes element lengths and positions for a DL6WU long-boom
Yagi from a design frequency and either a target gain or an available boom.

Examples:
  yagicalc design --frequency 144 --boom-length 10 --units wl \
      --driven-diameter 0.01 --parasitic-diameter 0.01
  yagicalc design --request 70cm.yaml --format json
  yagicalc table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.config/yagicalc/yagicalc.yaml)")
	pf.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.Bool(keyColor, true, "colored text output")
	a.v.BindPFlag(keyLogLevel, pf.Lookup(keyLogLevel))
	a.v.BindPFlag(keyColor, pf.Lookup(keyColor))

	root.AddCommand(a.newDesignCmd(), a.newTableCmd(), newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := loadConfig(a.v, a.cfgFile); err != nil {
		return err
	}

	a.log.Out = cmd.ErrOrStderr()
	a.log.Formatter = &log.TextFormatter{DisableTimestamp: true}
	level, err := log.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.log.SetLevel(level)
	// vlib reports through the standard logger
	stdlog.SetFlags(0)
	stdlog.SetOutput(a.log.WriterLevel(log.DebugLevel))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("config loaded")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
