// Package cmd provides the CLI commands for wallet.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hvergara/wallet/pkg/config"
	"github.com/hvergara/wallet/pkg/db"
	"github.com/hvergara/wallet/pkg/ledger"
)

var (
	cfgFile string
	dbFile  string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "CLI app for bank accounts management",
	Long: `wallet is a personal bookkeeping tool backed by a local SQLite
database. It keeps one or more accounts, records expenses and incoming
money, and tracks the statement and available balance of each account.

Example:
  wallet init
  wallet new account Main 100.00
  wallet new expense "groceries" 30.00 --charged
  wallet list account`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "", "database file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(backupCmd)
}

// loadConfig loads the configuration, applying the --db override.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	exitOnError(err, "failed to load configuration")

	if dbFile != "" {
		cfg.DBPath = dbFile
	}
	return cfg
}

// openLedger opens the database and builds the ledger over it.
// The caller must close the returned connection.
func openLedger() (*db.Connection, *ledger.Ledger, *config.Config) {
	cfg := loadConfig()

	slog.Debug("Opening database", "path", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	exitOnError(err, "failed to open database")

	return conn, ledger.New(conn), cfg
}

// report prints a friendly message for expected, recoverable outcomes and
// returns true when err was one of them. Hard errors return false and go
// through exitOnError instead.
func report(err error) bool {
	if err == nil {
		return false
	}

	var notFound *db.NotFoundError
	var validation *ledger.ValidationError

	switch {
	case errors.As(err, &notFound):
		fmt.Printf("%s.\n", capitalize(notFound.Error()))
	case errors.As(err, &validation):
		fmt.Printf("%s.\n", capitalize(validation.Error()))
	case errors.Is(err, ledger.ErrInsufficientFunds):
		fmt.Println("Not enough available funds! Use --force to post it anyway.")
	case errors.Is(err, ledger.ErrNothingToUpdate):
		fmt.Println("Nothing to update. Pass --name and/or --balance.")
	case errors.Is(err, db.ErrDefaultAccount):
		fmt.Println("You can't delete the default account.")
	default:
		return false
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
