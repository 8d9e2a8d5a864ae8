package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const testAPIKey = "test-key"

// capturedRequest is what the test server saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// captureServer records every request and answers with a fixed response.
type captureServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newCaptureServer(t *testing.T, status int, response string) *captureServer {
	t.Helper()

	srv := &captureServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		assert.NoError(t, err)

		srv.mu.Lock()
		srv.requests = append(srv.requests, capturedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Header: request.Header.Clone(),
			Body:   body,
		})
		srv.mu.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (s *captureServer) last(t *testing.T) capturedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests, "no request reached the server")

	return s.requests[len(s.requests)-1]
}

func (s *captureServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&harvest.Config{APIKey: testAPIKey, BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// endpointTest describes one call and the request it must produce.
type endpointTest struct {
	name       string
	call       func(ctx context.Context, c *Client) (interface{}, error)
	response   string
	wantMethod string
	wantPath   string
	wantQuery  url.Values
	// wantBody is compared as JSON; empty means no body is sent.
	wantBody string
	// wantOBO is the expected On-Behalf-Of header; empty means absent.
	wantOBO string
}

// RunEndpointTests runs each call against a capture server and checks the
// outgoing request.
func RunEndpointTests(t *testing.T, tests []endpointTest) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			response := testCase.response
			if response == "" {
				response = "{}"
			}

			server := newCaptureServer(t, http.StatusOK, response)
			client := NewTestClient(t, server.URL)

			result, err := testCase.call(context.Background(), client)
			require.NoError(t, err)
			assert.NotNil(t, result)

			req := server.last(t)
			assert.Equal(t, testCase.wantMethod, req.Method)
			assert.Equal(t, testCase.wantPath, req.Path)
			assert.Equal(t, "Basic dGVzdC1rZXk6", req.Header.Get("Authorization"))

			if testCase.wantQuery == nil {
				assert.Empty(t, req.Query)
			} else {
				assert.Equal(t, testCase.wantQuery, req.Query)
			}

			if testCase.wantBody == "" {
				assert.Empty(t, req.Body)
			} else {
				assert.JSONEq(t, testCase.wantBody, string(req.Body))
			}

			obo, present := req.Header["On-Behalf-Of"]
			if testCase.wantOBO == "" {
				assert.False(t, present, "On-Behalf-Of must not be sent")
			} else {
				require.True(t, present, "On-Behalf-Of must be sent")
				assert.Equal(t, []string{testCase.wantOBO}, obo)
			}
		})
	}
}
