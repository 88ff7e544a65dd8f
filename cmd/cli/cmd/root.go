// Package cmd provides the CLI commands for payroll.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payroll/core/session"
	"payroll/core/ui"
	"payroll/internal/config"
	"payroll/internal/errors"
	"payroll/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd runs the interactive session
var rootCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Interactive payroll calculator",
	Long: `payroll prompts for each employee's name, hours, hourly rate and
income tax rate, prints gross pay, tax withheld and net pay, and keeps
running totals for the session.

Type End at any prompt to request quit. Totals are printed when the
session ends, including on Ctrl-C.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runSession,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("failed to initialize logging", err)
	}
	logging.Debug("configuration loaded",
		zap.String("path", cfgFile),
		zap.String("log_level", cfg.Logging.Level),
		zap.Int("rule_width", cfg.Output.RuleWidth))
	return nil
}

// runSession always succeeds once the session starts; every way the
// session can end prints the totals and exits 0.
func runSession(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	defer logging.Sync()

	w := ui.NewWriter(cmd.OutOrStdout(), !cfg.Output.Color)
	w.SetRuleWidth(cfg.Output.RuleWidth)
	w.SetCurrency(cfg.Output.CurrencySymbol)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.New(w, logging.Logger).Run(ctx, cmd.InOrStdin())
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "payroll version "+version)
	},
}
