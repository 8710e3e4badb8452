package cmd

import (
	"fmt"

	"github.com/internquest/internquest/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update InternQuest configuration settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a configuration value",
	Example: `  internquest config set --key auth_endpoint --value https://auth.example.edu
  internquest config set --key lookup_endpoint --value https://lookup.example.edu/v1/resolve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return nil
		}

		validKeys := []string{"auth_endpoint", "lookup_endpoint", "student_id", "data_dir"}
		valid := false
		for _, k := range validKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Printf("Invalid key. Must be one of: %v\n", validKeys)
			return nil
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("error setting config: %w", err)
		}

		fmt.Printf("✓ Set %s\n", key)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.Get(args[0]))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)

	configSetCmd.Flags().String("key", "", "Configuration key")
	configSetCmd.Flags().String("value", "", "Configuration value")
}
