// Package main is the entry point for the planner HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rubika-tools/planner-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "planner-api",
	Short: "Character build planner API",
	Long:  `planner-api serves the character build planner over HTTP JSON: draft management, IP training, equipment and buff loadouts, stat resolution, and nano combat metrics.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
