package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCount int64
	listAll   bool
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list {account|transaction}",
	Short: "List stored items",
	Long: `List accounts or transactions in ascending-id order.

By default the list is capped at the configured limit; use --count to change
it or --all to list everything.

Example:
  wallet list account
  wallet list transaction --count 25`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"account", "transaction"},
	Run:       runList,
}

func init() {
	listCmd.Flags().Int64VarP(&listCount, "count", "c", 0, "number of items to list")
	listCmd.Flags().BoolVar(&listAll, "all", false, "list all items in the table")
}

func runList(cmd *cobra.Command, args []string) {
	conn, l, cfg := openLedger()
	defer conn.Close()

	limit := cfg.ListLimit
	if cmd.Flags().Changed("count") {
		limit = listCount
	}
	if listAll {
		limit = 0
	}

	switch args[0] {
	case "account":
		accounts, err := l.ListAccounts(limit)
		if report(err) {
			return
		}
		exitOnError(err, "failed to list accounts")

		if len(accounts) == 0 {
			fmt.Println("No accounts yet. Try 'wallet new account' first.")
			return
		}
		for _, a := range accounts {
			marker := ""
			if a.IsDefault {
				marker = "Default"
			}
			fmt.Printf("%-4d.- %-20s %s%12s  avail %s%12s  %s\n",
				a.ID, a.Name, cfg.Currency, a.Balance, cfg.Currency, a.Available, marker)
		}
	case "transaction":
		txns, err := l.ListTransactions(limit)
		if report(err) {
			return
		}
		exitOnError(err, "failed to list transactions")

		if len(txns) == 0 {
			fmt.Println("No transactions yet. Try 'wallet new expense' first.")
			return
		}
		for _, t := range txns {
			charged := ""
			if t.Charged {
				charged = "charged"
			}
			fmt.Printf("%-4d.- %s  %-8s %-25s %s%12s  acct %-4d %s\n",
				t.ID, t.Date.Format("2006-01-02"), t.Flow, t.Message,
				cfg.Currency, t.Value, t.AccountID, charged)
		}
	}
}
