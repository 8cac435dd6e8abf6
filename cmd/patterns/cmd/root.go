package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patterns/internal/config"
	"patterns/internal/log"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile    string
	cfg        config.Config
	logCleanup func()
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"debug":    "debug",
	"log-file": "log_file",
	"catalog":  "catalog",
	"script":   "script",
	"journal":  "journal",
	"discount": "discount",
	"strategy": "strategies",
	"section":  "sections",
}

// NewRootCmd builds the patterns command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Observer, Strategy and Command walkthroughs with an undo/redo editor",
		Long: `patterns runs three small scenarios: discount notifications fanned out to
subscribers, a product catalog sorted by a swappable strategy, and a text
buffer driven by write/undo/redo commands. The edit subcommand opens the
buffer in an interactive terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+config.DefaultFileName+" or ~/.config/patterns/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write debug logs")
	rootCmd.PersistentFlags().String("log-file", "", "debug log file (default: patterns-debug.log)")

	rootCmd.AddCommand(newDemoCmd(a), newEditCmd(a), newSortCmd(a), newConfigCmd(a))
	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if os.Getenv("PATTERNS_DEBUG") != "" {
		cfg.Debug = true
	}
	a.cfg = cfg
	return nil
}

// startLogging opens the debug log when enabled. viaTea routes it through
// tea.LogToFile for commands that take over the terminal.
func (a *app) startLogging(viaTea bool) error {
	if !a.cfg.Debug {
		return nil
	}
	var (
		cleanup func()
		err     error
	)
	if viaTea {
		cleanup, err = log.InitWithTeaLog(a.cfg.LogFile, "patterns")
	} else {
		cleanup, err = log.Init(a.cfg.LogFile)
	}
	if err != nil {
		return err
	}
	log.SetMinLevel(log.ParseLevel(a.cfg.LogLevel))
	a.logCleanup = cleanup
	log.Info(log.CatConfig, "logging started", "file", a.cfg.LogFile)
	return nil
}

// stopLogging detaches and closes the debug log opened by startLogging.
// Subcommands defer it so the file is closed on failed runs too.
func (a *app) stopLogging() {
	if a.logCleanup == nil {
		return
	}
	log.SetOutput(nil)
	a.logCleanup()
	a.logCleanup = nil
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
