package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "business_service",
	Short: "Business management service for clients, inventory, orders and billing",
	Long: `A service that manages the business catalog (clients, vendors, items,
services, technicians), the order/document/payment workflow, and exposes
dashboard and reporting aggregates over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			log.Error().Err(err).Msg("Failed to display help")
		}
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize()
}
