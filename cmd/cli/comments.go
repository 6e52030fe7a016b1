package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/api"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Comment on issues",
}

var commentsAddCmd = &cobra.Command{
	Use:     "add <post-id> <content...>",
	Short:   "Add a comment to an issue",
	Args:    cobra.MinimumNArgs(2),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.Join(args[1:], " ")

		comment, err := api.AddComment(cmd.Context(), apiClient, args[0], content)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Comment added."))
		fmt.Println(mutedStyle.Render(fmt.Sprintf("  %v: %s", comment.ID, comment.Content)))
		return nil
	},
}

var commentsLikeCmd = &cobra.Command{
	Use:     "like <post-id> <comment-id>",
	Short:   "Like a comment",
	Args:    cobra.ExactArgs(2),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, err := api.LikeComment(cmd.Context(), apiClient, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Comment now has %d likes.", comment.Likes)))
		return nil
	},
}

func init() {

	commentsCmd.AddCommand(commentsAddCmd)
	commentsCmd.AddCommand(commentsLikeCmd)

	rootCmd.AddCommand(commentsCmd)
}
