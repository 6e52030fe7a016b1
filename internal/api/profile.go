package api

import (
	"context"
	"fmt"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/models"
)

// GetProfile fetches a user profile. With an empty username it returns the
// authenticated caller's own profile.
func GetProfile(ctx context.Context, c *client.Client, username string) (*models.Profile, error) {

	path := "/users/profile"
	if len(username) > 0 {
		path = fmt.Sprintf("/users/profile/%s", username)
	}

	var result models.ProfileResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get(path)

	if wrapped := c.WrapError(res, err, "failed to fetch profile"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// UpdateProfile updates the caller's own profile. The avatar, when given,
// is uploaded alongside the text fields as a multipart file part.
func UpdateProfile(ctx context.Context, c *client.Client, update models.ProfileUpdate) (*models.Profile, error) {

	var result models.ProfileResponse

	req := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{})

	if len(update.AvatarPath) > 0 {
		req.SetMultipartFormData(map[string]string{
			"name": update.Name,
			"bio":  update.Bio,
		})
		req.SetFile("avatar", update.AvatarPath)
	} else {
		req.SetBody(map[string]string{
			"name": update.Name,
			"bio":  update.Bio,
		})
	}

	res, err := req.Put("/users/profile")

	if wrapped := c.WrapError(res, err, "failed to update profile"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// TopContributors returns the contributor leaderboard.
func TopContributors(ctx context.Context, c *client.Client) ([]models.Contributor, error) {

	var result models.ContributorsResponse

	res, err := c.R(ctx).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get("/users/top-contributors")

	if wrapped := c.WrapError(res, err, "failed to fetch top contributors"); wrapped != nil {
		return nil, wrapped
	}

	return result.Data, nil
}
