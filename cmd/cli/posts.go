package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/api"
	"github.com/manthan-io/cli/internal/models"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse and report civic issues",
	RunE:  runPostsList,
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reported issues",
	RunE:  runPostsList,
}

var postsCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Report a new issue",
	PreRunE: preRunAuthE,
	RunE:    runPostsCreate,
}

var postsVoteCmd = &cobra.Command{
	Use:     "vote <post-id> <up|down>",
	Short:   "Vote on an issue",
	Args:    cobra.ExactArgs(2),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := api.VotePost(cmd.Context(), apiClient, args[0], models.VoteDirection(args[1]))
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Vote recorded. %q now has %d votes.", post.Title, post.Votes)))
		return nil
	},
}

var postsLikeCmd = &cobra.Command{
	Use:     "like <post-id>",
	Short:   "Like an issue",
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		unlike, _ := cmd.Flags().GetBool("undo")

		post, err := api.LikePost(cmd.Context(), apiClient, args[0], !unlike)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("%q now has %d likes.", post.Title, post.Likes)))
		return nil
	},
}

var postsShareCmd = &cobra.Command{
	Use:     "share <post-id>",
	Short:   "Share an issue",
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := api.SharePost(cmd.Context(), apiClient, args[0])
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Shared. %q now has %d shares.", post.Title, post.Shares)))
		return nil
	},
}

func runPostsList(cmd *cobra.Command, _ []string) error {

	posts, err := api.FetchPosts(cmd.Context(), apiClient)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Community Feed"))
	fmt.Println()

	if len(posts) == 0 {
		fmt.Println(infoStyle.Render("No issues reported yet. Run 'manthan posts create' to report one."))
		return nil
	}

	for _, post := range posts {
		fmt.Println(renderPost(post))
	}

	return nil
}

func renderPost(post models.Post) string {
	var b strings.Builder

	b.WriteString(postTitleStyle.Render(post.Title))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  #%v", post.ID)))
	b.WriteString("\n")

	if len(post.Category) > 0 {
		b.WriteString(categoryStyle.Render(post.Category))
	}
	switch strings.ToLower(post.Status) {
	case "resolved", "closed":
		b.WriteString(statusResolvedStyle.Render(strings.ToUpper(post.Status)))
	case "":
	default:
		b.WriteString(statusOpenStyle.Render(strings.ToUpper(post.Status)))
	}
	b.WriteString("\n")

	if len(post.Description) > 0 {
		b.WriteString("  " + post.Description)
		b.WriteString("\n")
	}

	meta := fmt.Sprintf("  %d votes · %d likes · %d comments · %d shares",
		post.Votes, post.Likes, post.Comments, post.Shares)
	if len(post.Author) > 0 {
		meta += fmt.Sprintf(" · by %s", post.Author)
	}
	b.WriteString(mutedStyle.Render(meta))
	b.WriteString("\n")

	return b.String()
}

func runPostsCreate(cmd *cobra.Command, _ []string) error {

	var post models.NewPost

	post.Title, _ = cmd.Flags().GetString("title")
	post.Description, _ = cmd.Flags().GetString("description")
	post.Category, _ = cmd.Flags().GetString("category")
	post.ImagePath, _ = cmd.Flags().GetString("image")

	if len(post.Title) == 0 || len(post.Description) == 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Title").
					Description("A short summary of the issue").
					Value(&post.Title),
				huh.NewText().
					Title("Description").
					Description("What is the issue and where is it?").
					Value(&post.Description),
				huh.NewSelect[string]().
					Title("Category").
					Options(
						huh.NewOption("Infrastructure", "infrastructure"),
						huh.NewOption("Sanitation", "sanitation"),
						huh.NewOption("Safety", "safety"),
						huh.NewOption("Environment", "environment"),
						huh.NewOption("Other", "other"),
					).
					Value(&post.Category),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("report cancelled: %w", err)
		}
	}

	created, err := api.CreatePost(cmd.Context(), apiClient, post)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Issue reported!"))
	fmt.Printf("ID: %v\n", created.ID)
	fmt.Println()

	return nil
}

func init() {

	postsCreateCmd.Flags().String("title", "", "Issue title")
	postsCreateCmd.Flags().String("description", "", "Issue description")
	postsCreateCmd.Flags().String("category", "", "Issue category")
	postsCreateCmd.Flags().String("image", "", "Path to an image to attach")

	postsLikeCmd.Flags().Bool("undo", false, "Remove your like instead")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsVoteCmd)
	postsCmd.AddCommand(postsLikeCmd)
	postsCmd.AddCommand(postsShareCmd)

	rootCmd.AddCommand(postsCmd)
}
