package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	moneymoney "github.com/gronke/go-moneymoney"
	"github.com/gronke/go-moneymoney/internal/config"
	"github.com/gronke/go-moneymoney/internal/snapshot"
)

func newClient(cfg *config.Config) *moneymoney.Client {
	return moneymoney.New(moneymoney.WithApplication(cfg.Application))
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAccountsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Export all accounts with balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := newClient(cfg).ExportAccounts(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(accounts)
		},
	}
}

func newCategoriesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Export all categories with budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := newClient(cfg).ExportCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(categories)
		},
	}
}

func newTransactionsCmd(cfg *config.Config) *cobra.Command {
	var (
		from     string
		to       string
		account  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Export transactions in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := moneymoney.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			params := moneymoney.NewExportTransactionsParams(fromDate)
			if to != "" {
				toDate, err := moneymoney.ParseDate(to)
				if err != nil {
					return fmt.Errorf("invalid --to date: %w", err)
				}
				params = params.WithToDate(toDate)
			}
			if account != "" {
				params = params.WithFromAccount(account)
			}
			if category != "" {
				params = params.WithFromCategory(category)
			}
			resp, err := newClient(cfg).ExportTransactions(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&to, "to", "", "end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&account, "account", "", "filter by account UUID, IBAN or name")
	cmd.Flags().StringVar(&category, "category", "", "filter by category UUID or name")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newPortfolioCmd(cfg *config.Config) *cobra.Command {
	var (
		account    string
		assetClass string
	)

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Export securities holdings",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := moneymoney.NewExportPortfolioParams()
			if account != "" {
				params = params.WithFromAccount(account)
			}
			if assetClass != "" {
				params = params.WithFromAssetClass(assetClass)
			}
			resp, err := newClient(cfg).ExportPortfolio(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "filter by account UUID, IBAN or name")
	cmd.Flags().StringVar(&assetClass, "asset-class", "", "filter by asset class UUID or name")

	return cmd
}

func newAddTransactionCmd(cfg *config.Config) *cobra.Command {
	var (
		account  string
		date     string
		to       string
		amount   float64
		purpose  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add-transaction",
		Short: "Add a transaction to an offline account",
		RunE: func(cmd *cobra.Command, args []string) error {
			onDate, err := moneymoney.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			params := moneymoney.NewAddTransactionParams(account, onDate, to, amount)
			if purpose != "" {
				params = params.WithPurpose(purpose)
			}
			if category != "" {
				params = params.WithCategory(category)
			}
			return newClient(cfg).AddTransaction(cmd.Context(), params)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "target offline account (required)")
	cmd.Flags().StringVar(&date, "date", "", "booking date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&to, "to", "", "counterparty name (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount, negative for expenses (required)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "purpose text")
	cmd.Flags().StringVar(&category, "category", "", "category UUID or name")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newSetTransactionCmd(cfg *config.Config) *cobra.Command {
	var (
		id        uint64
		checkmark string
		category  string
		comment   string
	)

	cmd := &cobra.Command{
		Use:   "set-transaction",
		Short: "Modify the checkmark, category or comment of a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := moneymoney.NewSetTransactionParams(id)
			if checkmark != "" {
				params = params.WithCheckmark(checkmark)
			}
			if category != "" {
				params = params.WithCategory(category)
			}
			if cmd.Flags().Changed("comment") {
				params = params.WithComment(comment)
			}
			return newClient(cfg).SetTransaction(cmd.Context(), params)
		},
	}

	cmd.Flags().Uint64Var(&id, "id", 0, "transaction id from a transactions export (required)")
	cmd.Flags().StringVar(&checkmark, "checkmark", "", `set the reviewed flag, "on" or "off"`)
	cmd.Flags().StringVar(&category, "category", "", "reassign the category")
	cmd.Flags().StringVar(&comment, "comment", "", "replace the comment")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newSnapshotCmd(cfg *config.Config) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record accounts and transactions into the local snapshot database",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := moneymoney.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}

			client := newClient(cfg)
			accounts, err := client.ExportAccounts(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.ExportTransactions(cmd.Context(),
				moneymoney.NewExportTransactionsParams(fromDate))
			if err != nil {
				return err
			}

			store, err := snapshot.Open(cfg.SnapshotDB)
			if err != nil {
				return err
			}
			defer store.Close()

			takenAt := time.Now()
			if err := store.SaveAccounts(takenAt, accounts); err != nil {
				return err
			}
			if err := store.SaveTransactions(takenAt, resp.Transactions); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "saved %d accounts and %d transactions to %s\n",
				len(accounts), len(resp.Transactions), cfg.SnapshotDB)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "transaction export start date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
