package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/common"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the platform",
	Long:  "Authenticates with the platform and stores the session locally so subsequent commands run as you",
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, _ []string) error {

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if len(email) == 0 || len(password) == 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("login cancelled: %w", err)
		}
	}

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	session, err := sessionManager.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Login successful!"))
	fmt.Printf("Signed in as %s <%s>\n", session.User.Name, session.User.Email)
	fmt.Println()

	return nil
}

// promptAndLogin asks the user whether to login and runs the login flow
func promptAndLogin(cmd *cobra.Command) error {
	fmt.Println()
	fmt.Println(titleStyle.Render("Authentication Required"))
	fmt.Println("No active session found.")
	fmt.Println()

	var shouldLogin bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Would you like to login now?").
				Value(&shouldLogin),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt cancelled: %w", err)
	}

	if !shouldLogin {
		return fmt.Errorf("authentication required but login was declined")
	}

	return runLogin(cmd, []string{})
}

func init() {

	loginCmd.Flags().String("email", "", "Email address to sign in with")
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")

	// Add the command to the root
	rootCmd.AddCommand(loginCmd)
}
