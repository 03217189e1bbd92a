package cli

import (
	"os"

	"github.com/pankajredekar/productapi/internal/config"
	"github.com/pankajredekar/productapi/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Creates a productapi.yml configuration file in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDefaultConfig(cmd, config.DefaultPath)
	},
}

func writeDefaultConfig(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()
	if utils.FileExists(configPath) {
		utils.PrintWarning(out, "%s already exists", configPath)
		return nil
	}

	def := config.Default()
	cfg := map[string]interface{}{
		"database_url":     def.DatabaseURL,
		"listen_addr":      def.ListenAddr,
		"log_level":        def.LogLevel,
		"max_open_conns":   def.MaxOpenConns,
		"shutdown_timeout": def.ShutdownTimeout.String(),
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		utils.PrintError(out, "Failed to generate config: %v", err)
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		utils.PrintError(out, "Failed to write config file: %v", err)
		return err
	}

	utils.PrintSuccess(out, "Created %s", configPath)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
