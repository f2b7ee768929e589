package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hvergara/wallet/pkg/db"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and initialize the database",
	Long: `Create the wallet database file and its tables.

Run this once before any other command. Running it again on an existing
database is harmless.

Example:
  wallet init`,
	Run: runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	slog.Debug("Opening database", "path", cfg.DBPath)
	conn, err := db.Open(cfg.DBPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	err = db.InitializeSchema(conn)
	exitOnError(err, "failed to initialize schema")

	fmt.Printf("Successfully created new database at %s!\n", cfg.DBPath)
}
