package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manthan-io/cli/internal/api"
	"github.com/manthan-io/cli/internal/models"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"inbox"},
	Short:   "View and manage your notifications",
	PreRunE: preRunAuthE,
	RunE:    runNotificationsList,
}

var notificationsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List notifications",
	PreRunE: preRunAuthE,
	RunE:    runNotificationsList,
}

var notificationsCountCmd = &cobra.Command{
	Use:     "count",
	Short:   "Show the unread notification count",
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, err := api.GetUnreadCount(cmd.Context(), apiClient)
		if err != nil {
			return err
		}

		if count == 0 {
			fmt.Println(infoStyle.Render("No unread notifications."))
		} else {
			fmt.Println(unreadStyle.Render(fmt.Sprintf("%d unread notifications", count)))
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:     "read <notification-id>",
	Short:   "Mark a notification as read",
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.MarkNotificationRead(cmd.Context(), apiClient, args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Marked as read."))
		return nil
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:     "read-all",
	Short:   "Mark every notification as read",
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := api.MarkAllNotificationsRead(cmd.Context(), apiClient); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("All notifications marked as read."))
		return nil
	},
}

var notificationsDeleteCmd = &cobra.Command{
	Use:     "delete <notification-id>",
	Short:   "Delete a notification",
	Args:    cobra.ExactArgs(1),
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.DeleteNotification(cmd.Context(), apiClient, args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Notification deleted."))
		return nil
	},
}

var notificationsTestCmd = &cobra.Command{
	Use:     "test [type]",
	Short:   "Ask the server to send you a test notification",
	Args:    cobra.MaximumNArgs(1),
	Hidden:  true,
	PreRunE: preRunAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		notificationType := ""
		if len(args) > 0 {
			notificationType = args[0]
		}

		if err := api.CreateTestNotification(cmd.Context(), apiClient, notificationType); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Test notification sent."))
		return nil
	},
}

func runNotificationsList(cmd *cobra.Command, _ []string) error {

	var query models.NotificationQuery
	query.Limit, _ = cmd.Flags().GetInt("limit")
	query.Skip, _ = cmd.Flags().GetInt("skip")

	if unread, _ := cmd.Flags().GetBool("unread"); unread {
		read := false
		query.Read = &read
	}

	notifications, err := api.GetNotifications(cmd.Context(), apiClient, query)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Notifications"))
	fmt.Println()

	if len(notifications) == 0 {
		fmt.Println(infoStyle.Render("Nothing here."))
		return nil
	}

	for _, notification := range notifications {
		marker := readStyle.Render("  ")
		style := readStyle
		if !notification.Read {
			marker = unreadStyle.Render("* ")
			style = unreadStyle
		}

		line := fmt.Sprintf("%v  %s", notification.ID, notification.Message)
		if len(notification.Sender) > 0 {
			line += mutedStyle.Render(fmt.Sprintf("  (from %s)", notification.Sender))
		}

		fmt.Println(marker + style.Render(line))
	}

	return nil
}

func init() {

	for _, cmd := range []*cobra.Command{notificationsCmd, notificationsListCmd} {
		cmd.Flags().Int("limit", 20, "Maximum number of notifications to fetch")
		cmd.Flags().Int("skip", 0, "Number of notifications to skip")
		cmd.Flags().Bool("unread", false, "Show only unread notifications")
	}

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsCountCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	notificationsCmd.AddCommand(notificationsDeleteCmd)
	notificationsCmd.AddCommand(notificationsTestCmd)

	rootCmd.AddCommand(notificationsCmd)
}
