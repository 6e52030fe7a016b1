package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/common"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and connection status",
	Long:  "Shows who you are signed in as, the configured API endpoint, and whether the server is reachable",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {

	fmt.Println(headerStyle.Render("Manthan Status"))
	fmt.Println()

	fmt.Printf("API endpoint: %s\n", cfg.GetAPIEndpoint())

	if err := apiClient.Ping(cmd.Context()); err != nil {
		fmt.Println("Connection:   " + errorStyle.Render("UNREACHABLE"))
		if common.IsNetworkError(err) {
			fmt.Println(mutedStyle.Render("  " + err.Error()))
		}
	} else {
		fmt.Println("Connection:   " + successStyle.Render("OK"))
	}

	fmt.Println()

	session := sessionManager.Current()
	if session == nil {
		fmt.Println(infoStyle.Render("Not signed in. Run 'manthan login' to get started."))
		return nil
	}

	fmt.Printf("Signed in as: %s <%s>\n", session.User.Name, session.User.Email)
	if len(session.User.Username) > 0 {
		fmt.Printf("Username:     @%s\n", session.User.Username)
	}

	if expiry, ok := tokenExpiry(session.Token); ok {
		if expiry.Before(time.Now()) {
			fmt.Println("Token:        " + warningStyle.Render(fmt.Sprintf("expired %s", expiry.Format("2006-01-02 15:04:05"))))
			fmt.Println(mutedStyle.Render("  The next request will refresh it automatically."))
		} else {
			fmt.Printf("Token:        valid until %s\n", expiry.Format("2006-01-02 15:04:05"))
		}
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		printRecentEvents()
	}

	return nil
}

// tokenExpiry decodes the expiry claim without verifying the signature.
// Display only, the server remains the authority on token validity.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(common.StripBearer(token), jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}

func printRecentEvents() {
	events := cfg.GetRecentLogEvents(50)

	fmt.Println()
	fmt.Println(headerStyle.Render("Recent Events"))

	if len(events) == 0 {
		fmt.Println(mutedStyle.Render("  none recorded"))
		return
	}

	for _, event := range events {
		line := fmt.Sprintf("  %s [%s] %s",
			event.Time.Format("15:04:05.000"),
			event.Level.String(),
			event.Message)
		fmt.Println(mutedStyle.Render(line))
	}
}

func init() {

	statusCmd.Flags().Bool("debug", false, "Include recent log events")

	rootCmd.AddCommand(statusCmd)
}
