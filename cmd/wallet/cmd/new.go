package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hvergara/wallet/pkg/db"
	"github.com/hvergara/wallet/pkg/ledger"
	"github.com/hvergara/wallet/pkg/money"
)

var (
	newCharged   bool
	newForce     bool
	newAccountID int64
)

// newCmd groups the subcommands that add rows to the database.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Add new stuff to the database (account, expense, incoming)",
}

var newAccountCmd = &cobra.Command{
	Use:   "account NAME [BALANCE]",
	Short: "Create a new account",
	Long: `Create a new account with an optional initial balance.

The first account you create becomes the default account: the one targeted
by expenses and incomings when no --account is given.

Example:
  wallet new account Main 100.00`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runNewAccount,
}

var newExpenseCmd = &cobra.Command{
	Use:   "expense MESSAGE VALUE",
	Short: "Add a new expense",
	Long: `Record an outgoing transaction against an account.

The expense lowers the account's available balance. With --charged it also
lowers the statement balance. An expense larger than the available balance
is rejected unless --force is given.

Example:
  wallet new expense "groceries" 30.00 --charged`,
	Args: cobra.ExactArgs(2),
	Run:  runNewExpense,
}

var newIncomingCmd = &cobra.Command{
	Use:   "incoming MESSAGE VALUE",
	Short: "Add a new incoming",
	Long: `Record incoming money on an account.

Incoming money raises both the available and the statement balance
immediately.

Example:
  wallet new incoming "salary" 1500.00`,
	Args: cobra.ExactArgs(2),
	Run:  runNewIncoming,
}

func init() {
	newExpenseCmd.Flags().BoolVarP(&newCharged, "charged", "c", false, "the expense is already charged in the account")
	newExpenseCmd.Flags().BoolVar(&newForce, "force", false, "post even if it exceeds the available balance")
	newExpenseCmd.Flags().Int64VarP(&newAccountID, "account", "a", 0, "target account id (default: the default account)")
	newIncomingCmd.Flags().Int64VarP(&newAccountID, "account", "a", 0, "target account id (default: the default account)")

	newCmd.AddCommand(newAccountCmd)
	newCmd.AddCommand(newExpenseCmd)
	newCmd.AddCommand(newIncomingCmd)
}

func runNewAccount(cmd *cobra.Command, args []string) {
	initial := money.Zero
	if len(args) == 2 {
		var err error
		initial, err = money.Parse(args[1])
		exitOnError(err, "invalid balance")
	}

	conn, l, cfg := openLedger()
	defer conn.Close()

	account, err := l.CreateAccount(args[0], initial)
	if report(err) {
		return
	}
	exitOnError(err, "failed to create account")

	slog.Debug("Account created", "id", account.ID, "default", account.IsDefault)

	fmt.Println("Success!")
	status := ""
	if account.IsDefault {
		status = "  Default"
	}
	fmt.Printf("New account %s - %s%s%s\n", account.Name, cfg.Currency, account.Balance, status)
}

func runNewExpense(cmd *cobra.Command, args []string) {
	postTransaction(cmd, args, db.FlowOutgoing)
}

func runNewIncoming(cmd *cobra.Command, args []string) {
	postTransaction(cmd, args, db.FlowIncoming)
}

func postTransaction(cmd *cobra.Command, args []string, flow db.FlowType) {
	value, err := money.Parse(args[1])
	exitOnError(err, "invalid value")

	params := ledger.PostParams{
		Message: args[0],
		Value:   value,
		Flow:    flow,
		Charged: newCharged,
		Force:   newForce,
	}
	if cmd.Flags().Changed("account") {
		params.AccountID = &newAccountID
	}

	conn, l, cfg := openLedger()
	defer conn.Close()

	txn, account, err := l.PostTransaction(params)
	if report(err) {
		return
	}
	exitOnError(err, "failed to post transaction")

	fmt.Printf("New %s: %s - %s%s\n", txn.Flow, txn.Message, cfg.Currency, txn.Value)
	fmt.Printf("Account %s: balance %s%s, available %s%s\n",
		account.Name, cfg.Currency, account.Balance, cfg.Currency, account.Available)
}
