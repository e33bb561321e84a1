package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	servermodels "panel/internal/server/models"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 1 << 10
	userAgent      = "panel-daemon-client"
)

// NodeFinder loads the connection details of a node.
type NodeFinder interface {
	FindNode(ctx context.Context, id int64) (*servermodels.Node, error)
}

// Server is the daemon API of a single node.
type Server interface {
	RevokeAccessKey(ctx context.Context, key string) error
}

// Repository addresses node daemons. SetNode resolves a node and returns a
// client bound to it; the Repository itself holds no per-node state.
type Repository struct {
	nodes   NodeFinder
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Repository)

// WithHTTPClient replaces the underlying HTTP client. Its timeout is kept
// unless WithTimeout is also given.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Repository) {
		if c != nil {
			r.http = c
		}
	}
}

// WithTimeout bounds every daemon call. It applies to a copy of the client,
// so a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(r *Repository) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// NewRepository constructs a daemon repository.
func NewRepository(nodes NodeFinder, opts ...Option) *Repository {
	r := &Repository{
		nodes:  nodes,
		http:   &http.Client{Timeout: defaultTimeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timeout > 0 {
		client := *r.http
		client.Timeout = r.timeout
		r.http = &client
	}
	return r
}

// SetNode targets the daemon running on nodeID.
func (r *Repository) SetNode(ctx context.Context, nodeID int64) (Server, error) {
	node, err := r.nodes.FindNode(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("load node %d: %w", nodeID, err)
	}
	return &nodeClient{
		node:    node,
		baseURL: strings.TrimRight(node.BaseURL(), "/"),
		http:    r.http,
		logger:  r.logger,
	}, nil
}

type nodeClient struct {
	node    *servermodels.Node
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// RevokeAccessKey tells the daemon to forget key so the next request with it
// re-authorizes against the panel.
func (c *nodeClient) RevokeAccessKey(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("daemon key is required")
	}
	endpoint := c.baseURL + "/v1/keys/" + url.PathEscape(key)
	redacted := c.baseURL + "/v1/keys/[redacted]"

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build revoke request: %w", err)
	}
	c.authorize(req)

	return c.do(req, "revoke access key", redacted)
}

func (c *nodeClient) authorize(req *http.Request) {
	req.Header.Set("X-Access-Token", c.node.DaemonSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

func (c *nodeClient) do(req *http.Request, op, logURL string) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: op, URL: logURL, Err: scrubURL(err)}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.logger.DebugContext(req.Context(), "daemon request",
		"op", op,
		"node_id", c.node.ID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RequestError{
			Op:         op,
			URL:        logURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}
	return nil
}

// scrubURL drops the request URL, which embeds the key, from transport errors.
func scrubURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
