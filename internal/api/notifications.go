package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/models"
)

// GetNotifications lists the caller's notifications, newest first, narrowed
// by the query options.
func GetNotifications(ctx context.Context, c *client.Client, query models.NotificationQuery) ([]models.Notification, error) {

	var result models.NotificationsResponse

	req := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{})

	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}
	if query.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(query.Skip))
	}
	if query.Read != nil {
		req.SetQueryParam("read", strconv.FormatBool(*query.Read))
	}

	res, err := req.Get("/notifications")

	if wrapped := c.WrapError(res, err, "failed to fetch notifications"); wrapped != nil {
		return nil, wrapped
	}

	return result.Data, nil
}

// GetUnreadCount returns the number of unread notifications.
func GetUnreadCount(ctx context.Context, c *client.Client) (int, error) {

	var result models.UnreadCountResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get("/notifications/unread/count")

	if wrapped := c.WrapError(res, err, "failed to fetch unread notification count"); wrapped != nil {
		return 0, wrapped
	}

	return result.Data.Count, nil
}

// MarkNotificationRead marks one notification as read.
func MarkNotificationRead(ctx context.Context, c *client.Client, notificationID string) error {

	res, err := c.R(ctx).
		SetError(&models.ErrorResponse{}).
		Put(fmt.Sprintf("/notifications/%s/read", notificationID))

	return c.WrapError(res, err, "failed to mark notification as read")
}

// MarkAllNotificationsRead marks every notification as read.
func MarkAllNotificationsRead(ctx context.Context, c *client.Client) error {

	res, err := c.R(ctx).
		SetError(&models.ErrorResponse{}).
		Put("/notifications/read/all")

	return c.WrapError(res, err, "failed to mark all notifications as read")
}

// DeleteNotification removes a notification.
func DeleteNotification(ctx context.Context, c *client.Client, notificationID string) error {

	res, err := c.R(ctx).
		SetError(&models.ErrorResponse{}).
		Delete(fmt.Sprintf("/notifications/%s", notificationID))

	return c.WrapError(res, err, "failed to delete notification")
}

// CreateTestNotification asks the server to emit a notification of the
// given type back at the caller. Development helper.
func CreateTestNotification(ctx context.Context, c *client.Client, notificationType string) error {

	if len(notificationType) == 0 {
		notificationType = "system"
	}

	res, err := c.R(ctx).
		SetBody(map[string]any{"type": notificationType}).
		SetError(&models.ErrorResponse{}).
		Post("/notifications/test")

	return c.WrapError(res, err, "failed to create test notification")
}
