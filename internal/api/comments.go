package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/models"
)

// AddComment appends a comment to a post.
func AddComment(ctx context.Context, c *client.Client, postID string, content string) (*models.Comment, error) {

	if len(content) == 0 {
		return nil, common.NewValidationError("comment content is required")
	}

	var result models.CommentResponse

	res, err := c.R(ctx).
		SetBody(&models.CommentRequest{Content: content}).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Post(fmt.Sprintf("/posts/%s/comments", postID))

	if wrapped := c.WrapError(res, err, "failed to add comment"); wrapped != nil {
		var authErr *common.AuthenticationError
		if errors.As(wrapped, &authErr) {
			return nil, common.NewAuthenticationError("please login to add a comment", authErr)
		}
		return nil, wrapped
	}

	return &result.Data, nil
}

// LikeComment toggles the caller's like on a comment.
func LikeComment(ctx context.Context, c *client.Client, postID string, commentID string) (*models.Comment, error) {

	var result models.CommentResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Post(fmt.Sprintf("/posts/%s/comments/%s/like", postID, commentID))

	if wrapped := c.WrapError(res, err, "failed to like comment"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}
