package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// suppressLogoutNotice silences the session-expired notice when the user
// signs out on purpose.
var suppressLogoutNotice bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {

		if sessionManager.Current() == nil {
			fmt.Println(infoStyle.Render("No active session."))
			return nil
		}

		suppressLogoutNotice = true
		defer func() { suppressLogoutNotice = false }()

		sessionManager.Logout()

		fmt.Println(successStyle.Render("Logged out."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
