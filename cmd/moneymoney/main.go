// Command moneymoney drives the MoneyMoney application from the terminal:
// it exports accounts, categories, transactions and portfolio holdings as
// JSON, adds and modifies transactions, and records local snapshots.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gronke/go-moneymoney/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// A .env next to the working directory may override the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "moneymoney",
		Short:         "moneymoney exports and modifies MoneyMoney data via its automation interface",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAccountsCmd(cfg),
		newCategoriesCmd(cfg),
		newTransactionsCmd(cfg),
		newPortfolioCmd(cfg),
		newAddTransactionCmd(cfg),
		newSetTransactionCmd(cfg),
		newSnapshotCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
