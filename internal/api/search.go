package api

import (
	"context"
	"strings"

	"github.com/manthan-io/cli/internal/client"
	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/models"
)

// Search runs a full-text search across the platform. searchType narrows
// the result set to one category; SearchAll returns every category.
func Search(ctx context.Context, c *client.Client, query string, searchType models.SearchType) (*models.SearchResults, error) {

	query = strings.TrimSpace(query)
	if len(query) == 0 {
		return nil, common.NewValidationError("search query is required")
	}
	if len(searchType) == 0 {
		searchType = models.SearchAll
	}

	var result models.SearchResponse

	res, err := c.R(ctx).
		SetQueryParam("q", query).
		SetQueryParam("type", string(searchType)).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get("/search")

	if wrapped := c.WrapError(res, err, "search failed"); wrapped != nil {
		return nil, wrapped
	}

	return &result.Data, nil
}

// Suggestions returns completion candidates for a partial query. Queries
// shorter than two characters never hit the server.
func Suggestions(ctx context.Context, c *client.Client, query string) ([]string, error) {

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, nil
	}

	var result models.SuggestionsResponse

	res, err := c.R(ctx).
		SetQueryParam("q", query).
		SetResult(&result).
		SetError(&models.ErrorResponse{}).
		Get("/search/suggestions")

	if wrapped := c.WrapError(res, err, "failed to fetch suggestions"); wrapped != nil {
		return nil, wrapped
	}

	return result.Data, nil
}
