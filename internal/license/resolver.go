package license

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sarag5/mlcookiecutter/internal/branding"
	"github.com/sarag5/mlcookiecutter/internal/log"
)

// Placeholder is written to LICENSE when the license text cannot be fetched.
const Placeholder = "Failed to fetch license. Please add manually."

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Result is the outcome of a license lookup: either the license body or the
// placeholder text.
type Result struct {
	Text      string
	Available bool
}

// Body returns a Result holding fetched license text.
func Body(text string) Result {
	return Result{Text: text, Available: true}
}

// Unavailable returns the placeholder Result.
func Unavailable() Result {
	return Result{Text: Placeholder}
}

// Info describes a license known to the lookup service.
type Info struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

type licensePayload struct {
	Key  string `json:"key"`
	Body string `json:"body"`
}

// Resolver fetches license text from the lookup service.
type Resolver struct {
	baseURL    string
	token      string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
	client     *resty.Client
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL sets the lookup service base URL.
func WithBaseURL(baseURL string) Option {
	return func(r *Resolver) {
		r.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithToken sets a GitHub token sent with every request.
func WithToken(token string) Option {
	return func(r *Resolver) {
		r.token = token
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(r *Resolver) {
		r.userAgent = ua
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver. Requests are never retried.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		baseURL:    defaultBaseURL,
		userAgent:  branding.CLIName(),
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
		logger:     log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	c := resty.NewWithClient(r.httpClient)
	c.SetLogger(r.logger)
	c.SetTimeout(r.timeout)
	c.SetRetryCount(0)
	c.SetHeader("Accept", "application/vnd.github+json")
	c.SetHeader("User-Agent", r.userAgent)
	if r.token != "" {
		c.SetHeader("Authorization", "token "+r.token)
	}
	r.client = c
	return r
}

// Resolve returns the license body for licenseID, or the placeholder when the
// service does not answer with a success status. Transport failures are folded
// into the placeholder as well.
func (r *Resolver) Resolve(ctx context.Context, licenseID string) Result {
	endpoint := fmt.Sprintf("%s/licenses/%s", r.baseURL, url.PathEscape(licenseID))
	r.logger.Debugf("Fetching license %q from %s", licenseID, endpoint)

	resp, err := r.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		r.logger.Warnf("Could not reach license service: %v", err)
		return Unavailable()
	}
	if !resp.IsSuccess() {
		r.logger.Debugf("License service returned status %d for %q", resp.StatusCode(), licenseID)
		return Unavailable()
	}

	var payload licensePayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		r.logger.Warnf("Could not parse license response: %v", err)
		return Unavailable()
	}
	return Body(payload.Body)
}

// List returns the licenses offered by the lookup service.
func (r *Resolver) List(ctx context.Context) ([]Info, error) {
	endpoint := r.baseURL + "/licenses"

	resp, err := r.client.R().SetContext(ctx).Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching licenses: %w", err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("license service returned status %d", resp.StatusCode())
	}

	var infos []Info
	if err := json.Unmarshal(resp.Body(), &infos); err != nil {
		return nil, fmt.Errorf("parsing licenses JSON: %w", err)
	}
	return infos, nil
}
