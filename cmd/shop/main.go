package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Imported for their init() side effects: migrations and seeders
	// register themselves.
	_ "github.com/Austinkuria/E-commerce-Site/database/migrations"
	_ "github.com/Austinkuria/E-commerce-Site/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shop — storefront server and tooling",
	Long:  "Shop runs the storefront API server and its supporting tasks: migrations, seeders, queue workers, and the scheduler.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)
	rootCmd.AddCommand(scheduleRunCmd)
}
