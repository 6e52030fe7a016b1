package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/manthan-io/cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the local configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Args:  cobra.MaximumNArgs(1),
	// The root PersistentPreRunE would fail on a broken config, which is
	// exactly when init is needed, so it is skipped here.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		written, err := config.WriteDefault(path)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Config written to " + written))
		fmt.Println(mutedStyle.Render("Edit it to point at your API endpoint."))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}

		fmt.Println(headerStyle.Render("Effective Configuration"))
		fmt.Println()
		fmt.Print(string(out))
		fmt.Println()
		fmt.Println(mutedStyle.Render("Session file: " + filepath.Clean(cfg.GetSessionPath())))
		return nil
	},
}

func init() {

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(configCmd)
}
