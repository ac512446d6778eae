package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tessera-live/tessera/internal/interfaces/cli/migrate"
	"github.com/tessera-live/tessera/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tessera",
		Short: "Tessera - event ticketing administration service",
		Long:  `Tessera exposes the administration API for event statistics and offline payment reconciliation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
