// Package api implements the HTTP client for the TaskVault REST API. It
// keeps the session token obtained at login and attaches it to every
// authenticated request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
)

// Task mirrors the task representation returned by the server.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client talks to one TaskVault server.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// IsLoggedIn reports whether the client holds a session token.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

// Ping checks server reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username, "password": password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signin", map[string]string{
		"username": username, "password": password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

// CreateTask adds a task for the logged-in user.
func (c *Client) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", map[string]string{
		"title": title, "description": description,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns the user's tasks; status and search are optional filters.
func (c *Client) ListTasks(ctx context.Context, status, search string) ([]Task, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if search != "" {
		q.Set("search", search)
	}
	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskStatus sets the status of one task.
func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id+"/status", map[string]string{
		"status": status,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes one task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

// do performs one request: marshals body, attaches the token, and either
// decodes the response into out or maps the error status onto the common
// sentinels.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) mapError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusConflict:
		return common.ErrorUsernameTaken
	case http.StatusUnauthorized:
		if body.Code == "INVALID_CREDENTIALS" {
			return common.ErrorInvalidCredentials
		}
		return common.ErrInvalidToken
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		if body.Message != "" {
			return fmt.Errorf("server error: %s", body.Message)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
