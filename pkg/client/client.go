package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver"
	"github.com/cenkalti/backoff/v4"
	"github.com/docker/go-connections/tlsconfig"
	"github.com/psviderski/blockctl/pkg/api"
)

const (
	// DefaultTimeout is the maximum amount of time a single request to the service may take, including retries.
	DefaultTimeout = 60 * time.Second
	// maxRetryTime is the maximum amount of time an idempotent request is retried on network errors.
	maxRetryTime = 10 * time.Second
	// maxErrorBodySize limits how much of an error response body is read.
	maxErrorBodySize = 1 << 20
)

// Config defines how to connect to the block storage service.
type Config struct {
	// Endpoint is the base URL of the volume service including the API version and project,
	// e.g. https://volume.example.com:8776/v3/0c2eba2c5af04d3f9e9d0d410b371fde.
	Endpoint string
	// Token is sent in the X-Auth-Token header.
	Token string
	// APIVersion is an optional volume API microversion, e.g. "3.10".
	APIVersion string
	TLS        TLSOptions
	// Timeout defaults to DefaultTimeout if zero.
	Timeout time.Duration
}

type TLSOptions struct {
	CAFile   string
	CertFile string
	KeyFile  string
	Insecure bool
}

// Client is a client for the block storage service API.
type Client struct {
	baseURL    *url.URL
	token      string
	apiVersion *semver.Version
	httpClient *http.Client
	newBackoff func() backoff.BackOff
}

var _ api.Client = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The client is used as is, without the retrying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryBackoff sets the backoff policy for retrying idempotent requests on network errors.
func WithRetryBackoff(newBackoff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackoff = newBackoff
	}
}

// New creates a new block storage service client. Idempotent requests are retried on network errors using
// an exponential backoff policy with a maximum interval of 1 second and a maximum elapsed time of 10 seconds.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("service endpoint is not set")
	}
	baseURL, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL '%s': %w", cfg.Endpoint, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint URL '%s': scheme must be http or https", cfg.Endpoint)
	}

	c := &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		newBackoff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(100*time.Millisecond),
				backoff.WithMaxInterval(1*time.Second),
				backoff.WithMaxElapsedTime(maxRetryTime),
			)
		},
	}
	if cfg.APIVersion != "" {
		if c.apiVersion, err = ParseAPIVersion(cfg.APIVersion); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		tlsConfig, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             cfg.TLS.CAFile,
			CertFile:           cfg.TLS.CertFile,
			KeyFile:            cfg.TLS.KeyFile,
			InsecureSkipVerify: cfg.TLS.Insecure,
		})
		if err != nil {
			return nil, fmt.Errorf("configure TLS: %w", err)
		}
		base := http.DefaultTransport.(*http.Transport).Clone()
		base.TLSClientConfig = tlsConfig

		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{
			Transport: &RetryRoundTripper{
				Base:       base,
				NewBackoff: c.newBackoff,
			},
			Timeout: timeout,
		}
	}

	return c, nil
}

func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// idSegment escapes a resource ID for use as a single URL path segment. IDs that can't name a resource
// because path cleaning would drop or collapse them result in an error matching api.ErrNotFound.
func idSegment(id string) (string, error) {
	switch id {
	case "", ".", "..":
		return "", fmt.Errorf("invalid ID '%s': %w", id, api.ErrNotFound)
	}
	return url.PathEscape(id), nil
}

// do sends a JSON request to the service and decodes the JSON response into respBody if it's not nil.
// Error responses are returned as *api.ServiceError.
func (c *Client) do(ctx context.Context, method string, path []string, query url.Values, reqBody, respBody any) error {
	reqURL := c.baseURL.JoinPath(path...)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}
	if header, ok := apiVersionHeader(c.apiVersion); ok {
		req.Header.Set("OpenStack-API-Version", header)
	}

	slog.Debug("Sending request to block storage service.", "method", method, "url", reqURL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	slog.Debug("Received response from block storage service.", "method", method, "url", reqURL.String(),
		"status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeServiceError(resp)
	}
	if respBody == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// fault is the error body format of the service: {"itemNotFound": {"code": 404, "message": "..."}}.
type fault struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func decodeServiceError(resp *http.Response) error {
	svcErr := &api.ServiceError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		svcErr.Message = fmt.Sprintf("read response body: %v", err)
		return svcErr
	}
	svcErr.Message = strings.TrimSpace(string(data))

	var faults map[string]fault
	if err = json.Unmarshal(data, &faults); err == nil && len(faults) == 1 {
		for kind, f := range faults {
			svcErr.Kind = kind
			svcErr.Message = f.Message
		}
	}
	return svcErr
}
