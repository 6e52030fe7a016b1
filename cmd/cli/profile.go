package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/api"
	"github.com/manthan-io/cli/internal/models"
)

var profileCmd = &cobra.Command{
	Use:     "profile [username]",
	Short:   "Show a user profile",
	Long:    "Shows your own profile, or another user's when a username is given",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}

		profile, err := api.GetProfile(cmd.Context(), apiClient, username)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(profile.Name))
		if len(profile.Username) > 0 {
			fmt.Println(mutedStyle.Render("@" + profile.Username))
		}
		if len(profile.Bio) > 0 {
			fmt.Println()
			fmt.Println(profile.Bio)
		}
		fmt.Println()

		if !profile.CreatedAt.IsZero() {
			fmt.Printf("Member since: %s\n", profile.CreatedAt.Format("January 2006"))
		}
		if profile.Stats != nil {
			fmt.Printf("Activity:     %d posts · %d comments · %d votes\n",
				profile.Stats.TotalPosts, profile.Stats.TotalComments, profile.Stats.TotalVotes)
		}

		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Update your profile",
	PreRunE: preRunAuthE,
	RunE:    runProfileEdit,
}

var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Show the top contributors leaderboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		contributors, err := api.TopContributors(cmd.Context(), apiClient)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("Top Contributors"))
		fmt.Println()

		if len(contributors) == 0 {
			fmt.Println(infoStyle.Render("No contributors yet."))
			return nil
		}

		for i, contributor := range contributors {
			fmt.Printf("%2d. %s %s\n",
				i+1,
				contributor.Name,
				mutedStyle.Render(fmt.Sprintf("(%d points)", contributor.Points)))
		}

		return nil
	},
}

func runProfileEdit(cmd *cobra.Command, _ []string) error {

	current, err := api.GetProfile(cmd.Context(), apiClient, "")
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{
		Name: current.Name,
		Bio:  current.Bio,
	}
	update.AvatarPath, _ = cmd.Flags().GetString("avatar")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&update.Name),
			huh.NewText().
				Title("Bio").
				Value(&update.Bio),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("edit cancelled: %w", err)
	}

	updated, err := api.UpdateProfile(cmd.Context(), apiClient, update)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Profile updated."))
	fmt.Printf("Name: %s\n", updated.Name)
	fmt.Println()

	return nil
}

func init() {

	profileEditCmd.Flags().String("avatar", "", "Path to a new avatar image")

	profileCmd.AddCommand(profileEditCmd)

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(contributorsCmd)
}
