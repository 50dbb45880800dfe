// Package rest is a thin client for the public hirehub API
// It speaks the platform envelope and maps wire errors back onto the
// project error codes so callers keep their retry semantics
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "hirehub/internal/platform/errors"
	"hirehub/internal/services/listings/domain"
)

// Client calls the public listings endpoints
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New creates a client for the given base URL (e.g. http://localhost:4000)
// token is the bearer credential for /listings/query; Search needs none
func New(base, token string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the platform response wrapper
type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

// Query fetches one filtered page through POST /listings/query
func (c *Client) Query(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	body := domain.QueryInput{
		ResultType:  string(in.ResultType),
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Province:    in.Province,
		Q:           in.SearchTerm,
		PageSize:    in.PageSize,
	}
	if in.Cursor != nil {
		body.Cursor = in.Cursor.Token()
	}
	return c.page(ctx, "/api/v1/listings/query", body, true)
}

// Search fetches one universal-search page through POST /listings/search
func (c *Client) Search(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	body := domain.SearchInput{
		Q:        in.SearchTerm,
		Province: in.Province,
		PageSize: in.PageSize,
	}
	if in.Cursor != nil {
		body.Cursor = in.Cursor.Token()
	}
	return c.page(ctx, "/api/v1/listings/search", body, false)
}

func (c *Client) page(ctx context.Context, path string, body any, authed bool) (domain.Page, error) {
	raw, err := c.post(ctx, path, body, authed)
	if err != nil {
		return domain.Page{}, err
	}
	var out domain.PageOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.Page{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode page")
	}
	cur, err := domain.ParseCursor(out.Cursor)
	if err != nil {
		return domain.Page{}, perr.Wrap(err, perr.ErrorCodeJSON, "decode page cursor")
	}
	return domain.Page{Items: out.Items, Cursor: cur}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, authed bool) (json.RawMessage, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(buf))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if authed && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "api unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read response")
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode envelope (http %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 || env.Error != "" {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("http %d", resp.StatusCode)
		}
		return nil, perr.New(env.Code, msg)
	}
	return env.Data, nil
}
