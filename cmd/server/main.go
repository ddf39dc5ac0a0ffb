// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-api",
	Short: "Pokemon API gRPC Server",
	Long:  `Pokemon API serves game saves, sessions, owned pokemon and wild encounters over gRPC.`,
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
