// Package client talks to the group admin API on behalf of the console.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"groupadmin/server/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const apiPrefix = "/api/v1"

// DefaultTimeout bounds every request made by the client
const DefaultTimeout = 15 * time.Second

var ErrUnauthorized = errors.New("not logged in or session expired")

// APIError is returned for any non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Unwrap lets callers match 401 answers with errors.Is(err, ErrUnauthorized)
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    T      `json:"data"`
}

type listEnvelope struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error"`
	Data       []models.Group    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Client is a resty backed implementation of the console data service
type Client struct {
	BaseURL string

	http *resty.Client
}

// New creates a client for the server at baseURL, authenticated with token
// when it is not empty
func New(baseURL, token string) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")

	r := resty.New().
		SetBaseURL(baseURL+apiPrefix).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		r.SetAuthToken(token)
	}

	return &Client{BaseURL: baseURL, http: r}
}

// SetToken replaces the bearer token sent with every request
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Token returns the bearer token in use
func (c *Client) Token() string {
	return c.http.Token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.Error
	}

	logrus.WithFields(logrus.Fields{
		"method": resp.Request.Method,
		"url":    resp.Request.URL,
		"status": apiErr.Status,
	}).Debug("API request failed")

	return apiErr
}

// Login exchanges the admin credentials for a token and starts using it
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out envelope[models.AdminResponse]
	resp, err := c.request(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err := check(resp, err); err != nil {
		return "", err
	}

	c.SetToken(out.Data.Token)
	return out.Data.Token, nil
}

// Me returns the admin the current token belongs to
func (c *Client) Me(ctx context.Context) (*models.AdminResponse, error) {
	var out envelope[models.AdminResponse]
	resp, err := c.request(ctx).SetResult(&out).Get("/auth/me")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// QueryParams renders q as the query string of a list request. Empty values
// are left out.
func QueryParams(q models.GroupQuery) map[string]string {
	params := map[string]string{}
	if q.Current > 0 {
		params["current"] = strconv.Itoa(q.Current)
	}
	if q.PageSize > 0 {
		params["pageSize"] = strconv.Itoa(q.PageSize)
	}
	if q.Sorter != "" {
		params["sorter"] = q.Sorter
	}
	if q.Name != "" {
		params["name"] = q.Name
	}
	if q.Disabled != nil {
		params["disabled"] = strconv.FormatBool(*q.Disabled)
	}
	if q.Mute != nil {
		params["mute"] = strconv.FormatBool(*q.Mute)
	}
	return params
}

// QueryGroups fetches one page of groups
func (c *Client) QueryGroups(ctx context.Context, q models.GroupQuery) (*models.GroupPage, error) {
	var out listEnvelope
	resp, err := c.request(ctx).
		SetQueryParams(QueryParams(q)).
		SetResult(&out).
		Get("/groups")
	if err := check(resp, err); err != nil {
		return nil, err
	}

	return &models.GroupPage{Groups: out.Data, Pagination: out.Pagination}, nil
}

// GetGroup fetches a single group
func (c *Client) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	var out envelope[models.Group]
	resp, err := c.request(ctx).
		SetPathParam("groupId", id).
		SetResult(&out).
		Get("/groups/{groupId}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// AddGroup creates a group
func (c *Client) AddGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	var out envelope[models.Group]
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/groups")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateGroup saves the name and description of a group
func (c *Client) UpdateGroup(ctx context.Context, req models.UpdateGroupRequest) (*models.Group, error) {
	var out envelope[models.Group]
	resp, err := c.request(ctx).
		SetPathParam("groupId", req.ID).
		SetBody(req).
		SetResult(&out).
		Put("/groups/{groupId}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// RemoveGroups deletes the groups with the given ids
func (c *Client) RemoveGroups(ctx context.Context, ids []string) error {
	resp, err := c.request(ctx).
		SetBody(models.RemoveGroupsRequest{Keys: ids}).
		Delete("/groups")
	return check(resp, err)
}

// SetDisabled bans or unbans a group
func (c *Client) SetDisabled(ctx context.Context, id string, disabled bool) error {
	resp, err := c.request(ctx).
		SetPathParam("groupId", id).
		SetBody(models.DisabledRequest{ID: id, Disabled: disabled}).
		Put("/groups/{groupId}/disabled")
	return check(resp, err)
}

// SetMute mutes or unmutes a group
func (c *Client) SetMute(ctx context.Context, id string, mute bool) error {
	resp, err := c.request(ctx).
		SetPathParam("groupId", id).
		SetBody(models.MuteRequest{ID: id, Mute: mute}).
		Put("/groups/{groupId}/mute")
	return check(resp, err)
}
