package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

// streamReadTimeout bounds how long a read may block; the server pings
// inside this window.
const streamReadTimeout = 90 * time.Second

// snapshotMessage is one server push on the refresh stream.
type snapshotMessage struct {
	Type  string      `json:"type"`
	Tasks []task.Task `json:"tasks"`
}

// Stream delivers full task collections pushed by the server. Each push is a
// complete snapshot, not a diff; the receiver replaces its confirmed state
// wholesale.
type Stream struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	closeErr  error
}

// OpenStream connects to the server's task refresh stream.
func (c *Client) OpenStream(ctx context.Context) (*Stream, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/api/tasks/stream"

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("token source: %w", err)
		}
		header.Set("Authorization", "Bearer "+tok.AccessToken)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, &APIError{Status: resp.StatusCode, Path: "/api/tasks/stream", Message: err.Error()}
		}
		return nil, fmt.Errorf("dial stream: %w", err)
	}
	return &Stream{conn: conn}, nil
}

// Listen reads snapshot pushes until the context is cancelled or the
// connection fails, invoking fn for each full collection received. Messages
// of other types are skipped.
func (s *Stream) Listen(ctx context.Context, fn func(tasks []task.Task)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-done:
		}
	}()

	for {
		if err := s.conn.SetReadDeadline(time.Now().Add(streamReadTimeout)); err != nil {
			return err
		}
		var msg snapshotMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read stream: %w", err)
		}
		if msg.Type == "tasks.snapshot" {
			fn(msg.Tasks)
		}
	}
}

// Close shuts the stream down. Safe to call more than once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
