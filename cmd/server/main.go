// Package main is the entry point for the player gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-player/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-player",
	Short: "RPG player gRPC server",
	Long:  `RPG player keeps chat bot player profiles: leveling, rewards, paths, classes and limitbreak.`,
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
