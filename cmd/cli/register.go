package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/common"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  "Creates a new platform account and signs you in immediately",
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, _ []string) error {

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if len(name) == 0 || len(email) == 0 || len(password) == 0 {
		var confirm string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Full name").
					Value(&name),
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					Description("At least 6 characters").
					EchoMode(huh.EchoModePassword).
					Value(&password),
				huh.NewInput().
					Title("Confirm password").
					EchoMode(huh.EchoModePassword).
					Value(&confirm),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("registration cancelled: %w", err)
		}

		if password != confirm {
			return common.NewValidationError("passwords do not match")
		}
	}

	ctx, cleanup := common.WithInterrupt(context.Background())
	defer cleanup()

	session, err := sessionManager.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Account created!"))
	fmt.Printf("Signed in as %s <%s>\n", session.User.Name, session.User.Email)
	fmt.Println()

	return nil
}

func init() {

	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(registerCmd)
}
