package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// Client wraps a single retryablehttp.Client configured for one attempt per
// call. It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	credential string
	userAgent  string
	logger     harvest.Logger
	debug      bool
	timeout    time.Duration
	httpClient *http.Client
	client     *retryablehttp.Client
}

// Request describes one Harvest API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request and failure logging.
func WithLogger(logger harvest.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sends requests through httpClient instead of a pooled default.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the overall timeout of the default underlying http.Client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a transport for baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: BasicCredential(apiKey),
		userAgent:  constants.DefaultUserAgent,
		logger:     harvest.NopLogger{},
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	rc.CheckRetry = noRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if c.httpClient != nil {
		rc.HTTPClient = c.httpClient
	} else {
		rc.HTTPClient.Timeout = c.timeout
	}

	if c.debug {
		rc.RequestLogHook = c.logRequest
		rc.ResponseLogHook = c.logResponse
	}

	c.client = rc

	return c
}

// BasicCredential returns the Authorization header value for apiKey: the key
// as username with an empty password.
func BasicCredential(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}

// noRetry never retries so every call is exactly one attempt. Transport
// errors are left for the error handler to pass through untouched.
func noRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do sends req. A non-2xx answer returns the response together with a
// *harvest.RequestFailedError. Transport failures are returned as-is.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = data
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAuthorization, c.credential)
	httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("Unexpected error", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})

		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Error("Unexpected error", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})

		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		reqErr := &harvest.RequestFailedError{
			StatusCode: httpResp.StatusCode,
			StatusText: statusText(httpResp),
			Body:       respBody,
		}

		c.logger.Error("API request failed", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status":      reqErr.StatusCode,
			"status_text": reqErr.StatusText,
			"body":        truncate(respBody, constants.MaxErrorBodySize),
		})

		return resp, reqErr
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method": resp.Request.Method,
		"url":    resp.Request.URL.String(),
		"status": resp.StatusCode,
	})
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return text
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}

	return string(bytes.ToValidUTF8(body[:limit], nil)) + "..."
}
