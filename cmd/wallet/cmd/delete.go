package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteID  int64
	deleteAll bool
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete {account|transaction}",
	Short: "Delete items from the database",
	Long: `Delete a single row by id, or a whole table with --all.

The default account is protected: it can only be removed by deleting all
accounts together.

Example:
  wallet delete account --id 3
  wallet delete transaction --all`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"account", "transaction"},
	Run:       runDelete,
}

func init() {
	deleteCmd.Flags().Int64VarP(&deleteID, "id", "i", 0, "id of the item to delete")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete all items in the table")
}

func runDelete(cmd *cobra.Command, args []string) {
	if !deleteAll && !cmd.Flags().Changed("id") {
		fmt.Println("Pass --id or --all to choose what to delete.")
		return
	}

	conn, l, _ := openLedger()
	defer conn.Close()

	var removed int64
	var err error

	switch args[0] {
	case "account":
		if deleteAll {
			removed, err = l.DeleteAllAccounts()
		} else {
			removed, err = l.DeleteAccount(deleteID)
		}
	case "transaction":
		if deleteAll {
			removed, err = l.DeleteAllTransactions()
		} else {
			removed, err = l.DeleteTransaction(deleteID)
		}
	}

	if report(err) {
		return
	}
	exitOnError(err, "failed to delete")

	if removed == 0 {
		if deleteAll {
			fmt.Printf("Zero rows deleted! There are no %ss yet.\n", args[0])
		} else {
			fmt.Printf("Zero rows deleted! No %s with id %d.\n", args[0], deleteID)
		}
		return
	}
	fmt.Printf("Successfully deleted %d rows!\n", removed)
}
