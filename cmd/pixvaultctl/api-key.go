package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// apiKeyCmd represents the api-key command
var apiKeyCmd = &cobra.Command{
	Use:   "api-key",
	Short: "Manage API keys",
	Long:  `Manage PixVault API keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'api-key' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(apiKeyCmd)
}
