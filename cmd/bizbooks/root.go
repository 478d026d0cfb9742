package main

import (
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "bizbooks",
	Short: "bizbooks bookkeeping backend",
	Long: `bizbooks serves the bookkeeping API for sales invoices, purchase orders
and expenses, and ships the tooling to operate it.

Configuration is read from the environment and an optional .env file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, nextNumberCmd)
}
