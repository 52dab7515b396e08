package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/szydag/taskdeck/internal/task"
)

// CollectionPath is the base path of the task resource.
const CollectionPath = "/api/tasks"

// DefaultTimeout bounds a single round-trip when the config provides none.
const DefaultTimeout = 10 * time.Second

// Client implements Service against the REST endpoint. One round-trip per
// call, no retries, no cache.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	logger  *log.Logger
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		timeout: timeout,
		logger:  logger,
	}, nil
}

// ListTasks implements Service.
func (c *Client) ListTasks(ctx context.Context, f task.Filter) ([]task.Task, error) {
	endpoint := c.baseURL + CollectionPath
	if key, value, ok := f.Query(); ok {
		endpoint += "?" + key + "=" + value
	}

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("list tasks: unexpected status %d", resp.StatusCode)
	}

	var tasks []task.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("list tasks: decode response: %w", err)
	}
	return tasks, nil
}

// GetTask implements Service.
func (c *Client) GetTask(ctx context.Context, id string) (task.Task, error) {
	resp, err := c.do(ctx, http.MethodGet, c.taskURL(id), nil)
	if err != nil {
		return task.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return task.Task{}, fmt.Errorf("get task %s: %w", id, ErrNotFound)
	}

	var t task.Task
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return task.Task{}, fmt.Errorf("get task %s: decode response: %w", id, err)
	}
	return t, nil
}

// CreateTask implements Service.
func (c *Client) CreateTask(ctx context.Context, d task.Draft) (string, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("create task: encode body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+CollectionPath, body)
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create task: status %d: %w", resp.StatusCode, ErrCreateFailed)
	}

	// The server is the id authority. A 201 with an unreadable body is
	// still a success, just without an id to report.
	var created task.Task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		c.logger.Debug("create response body not decodable", "err", err)
		return "", nil
	}
	return created.ID, nil
}

// UpdateTask implements Service.
func (c *Client) UpdateTask(ctx context.Context, id string, d task.Draft) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("update task %s: encode body: %w", id, err)
	}

	resp, err := c.do(ctx, http.MethodPut, c.taskURL(id), body)
	if err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("update task %s: status %d: %w", id, resp.StatusCode, ErrUpdateFailed)
	}
	return nil
}

// DeleteTask implements Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete task %s: status %d: %w", id, resp.StatusCode, ErrDeleteFailed)
	}
	return nil
}

// RawCollection fetches the unfiltered collection and returns the raw
// response body, for schema validation by the doctor command.
func (c *Client) RawCollection(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+CollectionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch collection: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + CollectionPath + "/" + url.PathEscape(id)
}

// do issues one request with the per-call timeout applied.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", endpoint)
	resp, err := c.httpc.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	c.logger.Debug("api response", "method", method, "url", endpoint, "status", resp.StatusCode)

	// Tie the cancel to body close so callers keep the usual defer shape.
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
