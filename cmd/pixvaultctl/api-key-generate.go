package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixvault/pixvault/pkg/auth"
)

// apiKeyGenerateCmd represents the api-key generate command
var apiKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new plaintext API key",
	Long: `
Generate a new plaintext API key.

The key has the form pvk.<id>.<random>. Paste it into a bootstrap api_key
file (or hand it to its owner); the loader stores only a derived hash, so
this is the only time the full key is visible.

Example:

$ export ADMIN_API_KEY="$(pixvaultctl api-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		showID, _ := cmd.Flags().GetBool("json")

		key, id, err := auth.GenerateKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate API key: %v\n", err)
			os.Exit(1)
		}

		if showID {
			output, _ := json.MarshalIndent(map[string]string{
				"id":      id.String(),
				"api_key": key,
			}, "", "  ")
			fmt.Println(string(output))
			return
		}

		fmt.Printf("%s", key)
	},
}

func init() {
	apiKeyCmd.AddCommand(apiKeyGenerateCmd)
	apiKeyGenerateCmd.Flags().Bool("json", false, "Print the key and its id as JSON")
}
