// Package api holds the typed wrappers the rest of the application calls
// the platform through: one file per resource, every function stateless,
// every failure normalized into the common error taxonomy.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/models"
)

// FetchPosts lists all reported issues. A 404 means the feed is simply
// empty, not an error.
func FetchPosts(ctx context.Context, c *client.Client) ([]models.Post, error) {

	var result models.PostsResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get("/posts")

	if wrapped := c.WrapError(res, err, "failed to fetch posts"); wrapped != nil {
		var serverErr *common.ServerError
		if errors.As(wrapped, &serverErr) && serverErr.StatusCode == http.StatusNotFound {
			return []models.Post{}, nil
		}
		return nil, wrapped
	}

	return result.Data, nil
}

// CreatePost reports a new issue. The image, when given, rides along as a
// multipart file part the way the web client uploads it.
func CreatePost(ctx context.Context, c *client.Client, post models.NewPost) (*models.Post, error) {

	if len(post.Title) == 0 {
		return nil, common.NewValidationError("title is required")
	}
	if len(post.Description) == 0 {
		return nil, common.NewValidationError("description is required")
	}

	var result models.PostResponse

	req := c.R(ctx).
		SetMultipartFormData(map[string]string{
			"title":       post.Title,
			"description": post.Description,
			"category":    post.Category,
		}).
		SetResult(&result).
		SetError(&models.ErrorResponse{})

	if len(post.ImagePath) > 0 {
		req.SetFile("image", post.ImagePath)
	}

	res, err := req.Post("/posts")

	if wrapped := c.WrapError(res, err, "failed to create post"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// VotePost casts an up or down vote on a post.
func VotePost(ctx context.Context, c *client.Client, postID string, direction models.VoteDirection) (*models.Post, error) {

	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, common.NewValidationError("invalid vote direction: %s", direction)
	}

	var result models.PostResponse

	res, err := c.R(ctx).
		SetBody(map[string]any{"direction": direction}).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Post(fmt.Sprintf("/posts/%s/vote", postID))

	if wrapped := c.WrapError(res, err, "failed to vote on post"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// LikePost sets or clears the caller's like on a post.
func LikePost(ctx context.Context, c *client.Client, postID string, liked bool) (*models.Post, error) {

	var result models.PostResponse

	res, err := c.R(ctx).
		SetBody(map[string]any{"liked": liked}).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Post(fmt.Sprintf("/posts/%s/like", postID))

	if wrapped := c.WrapError(res, err, "failed to like post"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// SharePost records a share and bumps the post's share counter.
func SharePost(ctx context.Context, c *client.Client, postID string) (*models.Post, error) {

	var result models.PostResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Post(fmt.Sprintf("/posts/%s/share", postID))

	if wrapped := c.WrapError(res, err, "failed to share post"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}
