package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/config"
	"github.com/manthan-io/cli/internal/sessions"
)

// Global configuration instance
var cfg *config.Config
var sessionManager *sessions.Manager
var apiClient *client.Client

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

// preRunConfigE wires up the config, session manager and API client before
// any command runs.
func preRunConfigE(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Get the endpoint override from the flag
	endpoint, err := cmd.Flags().GetString("api-endpoint")
	if err == nil && len(endpoint) > 0 {
		if err := cfg.SetAPIEndpoint(endpoint); err != nil {
			return fmt.Errorf("failed to set api endpoint: %w", err)
		}
	}

	store := sessions.NewStore(cfg.GetSessionPath())

	sessionManager = sessions.NewManager(cfg, store, func() {
		if suppressLogoutNotice {
			return
		}
		fmt.Println()
		fmt.Println(warningStyle.Render("Your session has expired."))
		fmt.Println("Run 'manthan login' to sign in again.")
	})

	apiClient = client.New(cfg, sessionManager)

	return nil
}

// preRunAuthE runs after preRunConfigE on commands that only make sense
// for a signed-in user.
func preRunAuthE(cmd *cobra.Command, args []string) error {
	if sessionManager.Current() != nil {
		return nil
	}
	return promptAndLogin(cmd)
}

var rootCmd = &cobra.Command{
	Use:   "manthan",
	Short: "Manthan - report and track civic issues from your terminal",
	Long: `Manthan is the command line client for the Manthan civic engagement
platform. Report local issues, vote and comment on what matters to your
community, and follow the issues you care about.`,
	PersistentPreRunE: preRunConfigE,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation shows the feed, the same landing view the web
		// client opens with.
		return runPostsList(cmd, args)
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.config/manthan/config.yaml)")
	rootCmd.PersistentFlags().String("api-endpoint", "", "Override the API endpoint URL (e.g., http://localhost:3000/api/v1)")

}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}
