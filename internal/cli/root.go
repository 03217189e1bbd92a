package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "productapi",
	Short: "HTTP CRUD API for products",
	Long:  "productapi serves create, list, update and delete operations over a products table",

	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
