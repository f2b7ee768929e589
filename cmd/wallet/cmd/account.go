package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvergara/wallet/pkg/money"
)

var (
	accountID      int64
	accountName    string
	accountBalance string
	transferAmount string
	transferDest   int64
	transferSource int64
	transferForce  bool
)

// accountCmd groups account maintenance subcommands.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account related subcommands",
}

var accountDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Set one account as the default account",
	Long: `Mark an account as the default target for expenses and incomings.
Any previously default account loses the flag.

Example:
  wallet account default --id 2`,
	Run: runAccountDefault,
}

var accountEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the data of an account",
	Long: `Change an account's name and/or balance.

A balance edit moves the available balance by the same difference, keeping
pending expenses accounted for.

Example:
  wallet account edit --id 1 --name Savings --balance 250.00`,
	Run: runAccountEdit,
}

var accountTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer balance to another account",
	Long: `Move money between two accounts. Records a charged expense on the
source account and an incoming on the destination, atomically.

Example:
  wallet account transfer --balance 50.00 --destination 2`,
	Run: runAccountTransfer,
}

func init() {
	accountDefaultCmd.Flags().Int64VarP(&accountID, "id", "i", 0, "id of the account to set default")
	accountDefaultCmd.MarkFlagRequired("id")

	accountEditCmd.Flags().Int64VarP(&accountID, "id", "i", 0, "id of the account to edit")
	accountEditCmd.Flags().StringVarP(&accountName, "name", "n", "", "new name for the account")
	accountEditCmd.Flags().StringVarP(&accountBalance, "balance", "b", "", "new balance for the account")
	accountEditCmd.MarkFlagRequired("id")

	accountTransferCmd.Flags().StringVarP(&transferAmount, "balance", "b", "", "balance to transfer")
	accountTransferCmd.Flags().Int64VarP(&transferDest, "destination", "d", 0, "id of the destination account")
	accountTransferCmd.Flags().Int64VarP(&transferSource, "source", "s", 0, "id of the source account (default: the default account)")
	accountTransferCmd.Flags().BoolVar(&transferForce, "force", false, "transfer even if it exceeds the available balance")
	accountTransferCmd.MarkFlagRequired("balance")
	accountTransferCmd.MarkFlagRequired("destination")

	accountCmd.AddCommand(accountDefaultCmd)
	accountCmd.AddCommand(accountEditCmd)
	accountCmd.AddCommand(accountTransferCmd)
}

func runAccountDefault(cmd *cobra.Command, args []string) {
	conn, l, _ := openLedger()
	defer conn.Close()

	account, changed, err := l.SetDefaultAccount(accountID)
	if report(err) {
		return
	}
	exitOnError(err, "failed to set default account")

	if !changed {
		fmt.Printf("Account '%s' is already the default account.\n", account.Name)
		return
	}
	fmt.Printf("Account '%s' is now the default account.\n", account.Name)
}

func runAccountEdit(cmd *cobra.Command, args []string) {
	var newName *string
	var newBalance *money.Money

	if cmd.Flags().Changed("name") {
		newName = &accountName
	}
	if cmd.Flags().Changed("balance") {
		balance, err := money.Parse(accountBalance)
		exitOnError(err, "invalid balance")
		newBalance = &balance
	}

	conn, l, cfg := openLedger()
	defer conn.Close()

	account, err := l.EditAccount(accountID, newName, newBalance)
	if report(err) {
		return
	}
	exitOnError(err, "failed to edit account")

	fmt.Printf("Account %d updated: %s - balance %s%s, available %s%s\n",
		account.ID, account.Name,
		cfg.Currency, account.Balance, cfg.Currency, account.Available)
}

func runAccountTransfer(cmd *cobra.Command, args []string) {
	amount, err := money.Parse(transferAmount)
	exitOnError(err, "invalid balance")

	var sourceID *int64
	if cmd.Flags().Changed("source") {
		sourceID = &transferSource
	}

	conn, l, cfg := openLedger()
	defer conn.Close()

	source, dest, err := l.Transfer(sourceID, transferDest, amount, transferForce)
	if report(err) {
		return
	}
	exitOnError(err, "failed to transfer")

	fmt.Printf("Transferred %s%s from '%s' to '%s'.\n", cfg.Currency, amount, source.Name, dest.Name)
	fmt.Printf("%s: available %s%s  |  %s: available %s%s\n",
		source.Name, cfg.Currency, source.Available,
		dest.Name, cfg.Currency, dest.Available)
}
