package client

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/config"
	"github.com/manthan-io/cli/internal/models"
	"github.com/manthan-io/cli/internal/sessions"
)

// Client is the single configured channel every domain API module calls
// through. It owns the base URL and the two interceptors: bearer injection
// on the way out, refresh-and-retry-once on a 401 on the way back.
//
// The session manager is injected at construction; the client never owns or
// mutates the session beyond asking the manager to refresh or log out.
type Client struct {
	auth *sessions.Manager
	rest *resty.Client
}

func New(cfg *config.Config, auth *sessions.Manager) *Client {

	rest := resty.New().
		SetBaseURL(cfg.GetAPIEndpoint()).
		SetTimeout(cfg.GetAPITimeout()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(1).
		SetRetryWaitTime(time.Millisecond).
		SetRetryMaxWaitTime(time.Second)

	// Request interceptor. Runs on every attempt, so a retried request
	// picks up the token the refresh just installed.
	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())

		if token := auth.Token(); len(token) > 0 {
			r.SetHeader("Authorization", common.BearerToken(token))
		}

		return nil
	})

	// Response interceptor. A 401 on a first attempt triggers exactly one
	// coalesced refresh; the attempt counter is the retry marker, so a 401
	// on the retried request falls through with no further refresh calls.
	rest.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil || res == nil {
			return false
		}
		if res.StatusCode() != http.StatusUnauthorized {
			return false
		}
		if res.Request.Attempt > 1 {
			logrus.WithFields(logrus.Fields{
				"url": res.Request.URL,
			}).Debugln("Still unauthorized after refresh, giving up")
			return false
		}

		if refreshErr := auth.Refresh(res.Request.Context()); refreshErr != nil {
			logrus.WithError(refreshErr).WithFields(logrus.Fields{
				"url": res.Request.URL,
			}).Debugln("Token refresh failed, not retrying")
			return false
		}

		logrus.WithFields(logrus.Fields{
			"url": res.Request.URL,
		}).Debugln("Token refreshed, retrying request once")

		return true
	})

	return &Client{
		auth: auth,
		rest: rest,
	}
}

// R returns a request bound to the given context. Domain API modules build
// on this; everything else about the pipeline is already configured.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.rest.R().SetContext(ctx)
}

// WrapError normalizes a finished call into the error taxonomy. The server
// message wins when one was parsed; defaultMessage covers the rest. A
// terminal 401 destroys the session before surfacing, so the caller's next
// action is a login, not a loop.
func (c *Client) WrapError(res *resty.Response, err error, defaultMessage string) error {
	if err != nil {
		return common.NewNetworkError(err)
	}

	if res == nil || !res.IsError() {
		return nil
	}

	if res.StatusCode() == http.StatusUnauthorized {
		c.auth.Logout()
		return common.NewAuthenticationError("your session has expired, please log in again", nil)
	}

	message := defaultMessage
	if errorResponse, ok := res.Error().(*models.ErrorResponse); ok && errorResponse != nil {
		if len(errorResponse.Message) > 0 {
			message = errorResponse.Message
		}
	}

	return common.NewServerError(res.StatusCode(), message)
}

// Ping probes the configured endpoint, mirroring the platform's /test
// route. Used at boot to confirm the base URL before anything heavier.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.R(ctx).Get("/test")
	return c.WrapError(res, err, "server is not reachable")
}
