// Package api fetches OctoFit collection endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/octofit/octofit/internal/config"
	"github.com/octofit/octofit/internal/logging"
	"github.com/octofit/octofit/internal/record"
)

const (
	// DefaultUserAgent identifies the client to the backend.
	DefaultUserAgent = "octofit-cli"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 32 << 20

	tracerName = "github.com/octofit/octofit/internal/api"
)

// Collection is the result of fetching one resource, possibly across pages.
type Collection struct {
	// URL is the first page's endpoint.
	URL     string
	Records []record.Record
	// Pages is the number of pages fetched.
	Pages int
	// Count is the envelope's count of the first page, if reported.
	Count *int
	// Truncated reports that a next link remained when max_pages was reached.
	Truncated bool
}

// Client issues GET requests against the configured API base.
type Client struct {
	cfg        config.APIConfig
	httpClient *http.Client
	tracer     trace.Tracer
	userAgent  string
	limiter    *rate.Limiter
	maxBody    int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLimiter sets the limiter that paces follow-up page requests.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// WithMaxBodyBytes bounds how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// NewClient creates a client for cfg. The config is expected to be valid.
func NewClient(cfg config.APIConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	pageRate := cfg.PageRate
	if pageRate <= 0 {
		pageRate = config.DefaultPageRate
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
		userAgent:  DefaultUserAgent,
		limiter:    rate.NewLimiter(rate.Limit(pageRate), 1),
		maxBody:    maxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the collection URL for resource.
func (c *Client) Endpoint(resource string) string {
	return c.cfg.Endpoint(resource)
}

// FetchCollection fetches the collection for resource. Only the first page
// is fetched unless the config enables page following.
func (c *Client) FetchCollection(ctx context.Context, resource string) (*Collection, error) {
	endpoint := c.Endpoint(resource)
	ctx, span := c.tracer.Start(ctx, "api.FetchCollection",
		trace.WithAttributes(
			attribute.String("octofit.resource", resource),
			attribute.String("url.full", endpoint),
		))
	defer span.End()

	log := logging.FromContext(ctx).With().
		Str("subsystem", "api").
		Str("resource", resource).
		Logger()

	page, err := c.FetchPage(ctx, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug().Err(err).Str("error_kind", Kind(err).String()).Str("url", endpoint).Msg("fetch failed")
		return nil, err
	}

	coll := &Collection{
		URL:     endpoint,
		Records: page.Records,
		Pages:   1,
		Count:   page.Count,
	}

	if c.cfg.FollowPages {
		if err = c.followPages(ctx, coll, endpoint, page.Next); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Debug().Err(err).Str("error_kind", Kind(err).String()).Msg("page fetch failed")
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.Int("octofit.records", len(coll.Records)),
		attribute.Int("octofit.pages", coll.Pages),
	)
	log.Debug().
		Int("records", len(coll.Records)).
		Int("pages", coll.Pages).
		Bool("truncated", coll.Truncated).
		Msg("collection fetched")
	return coll, nil
}

// FetchPage issues one GET to rawURL and normalizes the body.
func (c *Client) FetchPage(ctx context.Context, rawURL string) (Page, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, &TransportError{URL: rawURL, Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Page{}, &HTTPStatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return Page{}, &TransportError{URL: rawURL, Err: fmt.Errorf("reading response body: %w", err)}
	}
	if int64(len(data)) > c.maxBody {
		return Page{}, &TransportError{URL: rawURL, Err: fmt.Errorf("%w (%d bytes)", ErrBodyTooLarge, c.maxBody)}
	}

	var body any
	if err = json.Unmarshal(data, &body); err != nil {
		return Page{}, &ParseError{URL: rawURL, Err: err}
	}
	return Normalize(body), nil
}

// followPages appends records from next links until none remain or
// max_pages is reached.
func (c *Client) followPages(ctx context.Context, coll *Collection, current, next string) error {
	maxPages := c.cfg.MaxPages
	if maxPages <= 0 {
		maxPages = config.DefaultMaxPages
	}

	seen := map[string]struct{}{current: {}}
	for next != "" {
		if coll.Pages >= maxPages {
			coll.Truncated = true
			logging.FromContext(ctx).Info().
				Int("max_pages", maxPages).
				Msg("page limit reached, remaining pages skipped")
			return nil
		}

		nextURL, err := resolveNext(current, next)
		if err != nil {
			return &ParseError{URL: current, Err: fmt.Errorf("invalid next link %q: %w", next, err)}
		}
		if _, dup := seen[nextURL]; dup {
			return nil
		}
		seen[nextURL] = struct{}{}

		if err = c.limiter.Wait(ctx); err != nil {
			return &TransportError{URL: nextURL, Err: err}
		}

		page, err := c.FetchPage(ctx, nextURL)
		if err != nil {
			return err
		}
		coll.Records = append(coll.Records, page.Records...)
		coll.Pages++
		current, next = nextURL, page.Next
	}
	return nil
}

// resolveNext resolves a next link against the page it came from.
func resolveNext(current, next string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(next)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
