package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hvergara/wallet/pkg/db"
)

// backupCmd represents the backup command.
var backupCmd = &cobra.Command{
	Use:   "backup FILENAME",
	Short: "Create a copy of the current database",
	Long: `Copy the wallet database to a new file.

A plain file name gets a .db extension.

Example:
  wallet backup wallet-2026-09`,
	Args: cobra.ExactArgs(1),
	Run:  runBackup,
}

func runBackup(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	dest := args[0]
	if filepath.Ext(dest) == "" {
		dest += ".db"
	}

	slog.Debug("Backing up database", "from", cfg.DBPath, "to", dest)

	if err := db.Backup(cfg.DBPath, dest); err != nil {
		if report(err) {
			return
		}
		exitOnError(err, "failed to back up database")
	}

	fmt.Printf("Backup created successfully at %s!\n", dest)
}
