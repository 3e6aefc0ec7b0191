package sdk

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

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

// Client is a typed client for the GrindChain task API.
type Client struct {
	baseURL   string
	http      *http.Client
	retryCfg  retry.Config
	timeout   time.Duration
	tokens    oauth2.TokenSource
	userAgent string
}

// NewClient creates a new SDK client for the given server base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      o.httpClient,
		timeout:   o.timeout,
		tokens:    o.tokens,
		userAgent: o.userAgent,
		retryCfg: retry.Config{
			MaxAttempts:   o.maxAttempts,
			InitialDelay:  o.initialDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// ListTasks fetches the full task collection from the task source.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	data, err := c.call(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	if err := validatePayload(taskListSchemaLoader, data, "/api/tasks"); err != nil {
		return nil, err
	}
	var payload tasksPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return payload.Tasks, nil
}

// UpdateRoadmapItem sets the completed flag of one roadmap item and returns
// the canonical updated task computed by the server.
func (c *Client) UpdateRoadmapItem(ctx context.Context, taskID string, position int, completed bool) (*task.Task, error) {
	path := "/api/tasks/" + url.PathEscape(taskID) + "/roadmap"
	data, err := c.call(ctx, http.MethodPatch, path, updateRoadmapRequest{
		Position:  position,
		Completed: completed,
	})
	if err != nil {
		return nil, err
	}
	if err := validatePayload(taskSchemaLoader, data, path); err != nil {
		return nil, err
	}
	var payload taskPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return &payload.Task, nil
}

// DeleteTask removes a task on the server. The local collection is left to
// the caller; deletion is never applied optimistically.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	_, err := c.call(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(taskID), nil)
	return err
}

// GroupMembers fetches the group member list used to resolve sub-assignment
// references for the given task.
func (c *Client) GroupMembers(ctx context.Context, taskID string) ([]task.GroupMember, error) {
	path := "/api/tasks/" + url.PathEscape(taskID) + "/members"
	data, err := c.call(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if err := validatePayload(membersSchemaLoader, data, path); err != nil {
		return nil, err
	}
	var payload membersPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal members: %w", err)
	}
	return payload.Members, nil
}

// call performs one request with retry and unwraps the response envelope.
func (c *Client) call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	r := retry.New[json.RawMessage](c.retryCfg)
	data, err := r.Do(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return c.roundTrip(ctx, method, path, body)
	})
	if err != nil {
		return nil, fmt.Errorf("call %s %s: %w", method, path, err)
	}
	return data, nil
}

// roundTrip performs a single HTTP exchange.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("token source: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &APIError{Status: resp.StatusCode, Path: path, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, &SchemaError{Path: path, Causes: []string{err.Error()}}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Path: path, Message: msg}
	}
	return env.Data, nil
}
