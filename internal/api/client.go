package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
)

// Operation names, used in errors and logs.
const (
	OpList           = "list articles"
	OpGenerateSingle = "generate article"
	OpGenerateBulk   = "generate articles"
	OpDeleteAll      = "delete articles"
)

// maxErrorBody caps how much of a failed response is read.
const maxErrorBody = 4096

// Client talks to the blog generation backend.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	client    *http.Client
	logger    *slog.Logger
}

type Options struct {
	BaseURL string
	Version string
	// Timeout bounds each call. Zero leaves calls unbounded.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Client{
		baseURL:   opts.BaseURL,
		userAgent: "blogdeck/" + version,
		timeout:   opts.Timeout,
		client:    hc,
		logger:    logger,
	}
}

type listResponse struct {
	Articles []article.Article `json:"articles"`
}

type singleRequest struct {
	Prompt string `json:"prompt"`
}

type bulkRequest struct {
	Titles []article.GenerationRequest `json:"titles"`
}

type bulkResponse struct {
	Count int `json:"count"`
}

// ListArticles fetches every stored article.
func (c *Client) ListArticles(ctx context.Context) ([]article.Article, error) {
	var out listResponse
	if err := c.do(ctx, OpList, http.MethodGet, "/blog", nil, &out); err != nil {
		return nil, err
	}
	if out.Articles == nil {
		out.Articles = []article.Article{}
	}
	return out.Articles, nil
}

// GenerateSingle asks the backend to write one article from a free-form prompt.
func (c *Client) GenerateSingle(ctx context.Context, prompt string) error {
	return c.do(ctx, OpGenerateSingle, http.MethodPost, "/generate-single", singleRequest{Prompt: prompt}, nil)
}

// GenerateBulk submits all requests in one call and returns how many
// articles the backend reports as generated.
func (c *Client) GenerateBulk(ctx context.Context, reqs []article.GenerationRequest) (int, error) {
	var out bulkResponse
	if err := c.do(ctx, OpGenerateBulk, http.MethodPost, "/generate-articles", bulkRequest{Titles: reqs}, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// DeleteAll removes every stored article.
func (c *Client) DeleteAll(ctx context.Context) error {
	return c.do(ctx, OpDeleteAll, http.MethodDelete, "/blog", nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", op, err)
	}
	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("request failed", "op", op, "request_id", reqID, "err", err)
		return &RequestError{Op: op, RequestID: reqID, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		rerr := &RequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(b),
			RequestID:  reqID,
		}
		c.logger.Warn("server rejected request", "op", op, "status", resp.StatusCode, "message", rerr.Message, "request_id", reqID)
		return rerr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, RequestID: reqID, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
