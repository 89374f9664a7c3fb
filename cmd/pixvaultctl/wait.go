package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/pixvault/pixvault/pkg/db"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the database to be ready",
	Long: `Wait for the database to be ready by polling DATABASE_URL.

This command repeatedly pings the database until it accepts connections
or the maximum number of retries is reached. Useful before running
migrations or a bootstrap in freshly provisioned environments.

Example:
  pixvaultctl wait
  pixvaultctl wait --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		retries, _ := cmd.Flags().GetInt("retries")

		if err := waitForDatabase(retries); err != nil {
			fmt.Fprintf(os.Stderr, "Database did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForDatabase(retries int) error {
	dbURL := db.URL()
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	fmt.Println("Waiting for the database to be ready...")

	for i := 0; i < retries; i++ {
		if err := conn.Ping(); err == nil {
			fmt.Println()
			fmt.Println("Database is ready!")
			return nil
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("database is not ready after %d seconds", retries)
}
