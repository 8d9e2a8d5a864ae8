package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/fivetwenty-io/harvest-client/internal/client"
	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, harvest.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := New(&harvest.Config{BaseURL: "https://harvest.example.com"})
		require.ErrorIs(t, err, harvest.ErrAPIKeyRequired)
	})

	t.Run("defaults base URL", func(t *testing.T) {
		t.Parallel()

		client, err := New(&harvest.Config{APIKey: "abc"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
	})

	t.Run("trims trailing slash", func(t *testing.T) {
		t.Parallel()

		client, err := New(&harvest.Config{APIKey: "abc", BaseURL: "https://harvest.example.com/"})
		require.NoError(t, err)
		assert.Equal(t, "https://harvest.example.com", client.BaseURL())
	})

	t.Run("exposes every resource", func(t *testing.T) {
		t.Parallel()

		client, err := New(&harvest.Config{
			APIKey:      "abc",
			UserAgent:   "harvest-test/1.0",
			HTTPTimeout: 5 * time.Second,
			Debug:       true,
			Logger:      harvest.NopLogger{},
		})
		require.NoError(t, err)

		var _ harvest.Client = client

		assert.NotNil(t, client.Applications())
		assert.NotNil(t, client.Candidates())
		assert.NotNil(t, client.CustomFields())
		assert.NotNil(t, client.Jobs())
		assert.NotNil(t, client.JobPosts())
	})
}

func TestClient_UsesConfiguredUserAgent(t *testing.T) {
	t.Parallel()

	var agent string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		agent = request.Header.Get("User-Agent")

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id": 1, "first_name": "Ada", "last_name": "Lovelace"}`))
	}))
	defer server.Close()

	client, err := New(&harvest.Config{APIKey: "abc", BaseURL: server.URL, UserAgent: "harvest-test/1.0"})
	require.NoError(t, err)

	candidate, err := client.Candidates().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", candidate.FirstName)
	assert.Equal(t, "harvest-test/1.0", agent)
}

func TestClient_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen = map[string]string{}
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		seen[request.URL.Path] = request.Header.Get(constants.HeaderOnBehalfOf)
		mu.Unlock()

		id := strings.TrimPrefix(request.URL.Path, "/v1/applications/")
		id = strings.TrimSuffix(id, "/advance")

		writer.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(writer, `{"id": %s, "status": "active"}`, id)
	}))
	defer server.Close()

	client, err := New(&harvest.Config{APIKey: "abc", BaseURL: server.URL})
	require.NoError(t, err)

	const calls = 20

	var wg sync.WaitGroup

	errs := make(chan error, calls)

	for i := 1; i <= calls; i++ {
		wg.Add(1)

		go func(id int64) {
			defer wg.Done()

			app, err := client.Applications().Advance(context.Background(), id,
				&harvest.AdvanceApplicationParams{FromStageID: 1}, fmt.Sprintf("user-%d", id))
			if err != nil {
				errs <- err

				return
			}

			if app.ID != id {
				errs <- fmt.Errorf("application %d answered as %d", id, app.ID)
			}
		}(int64(i))
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, seen, calls)

	for i := 1; i <= calls; i++ {
		assert.Equal(t, fmt.Sprintf("user-%d", i), seen[fmt.Sprintf("/v1/applications/%d/advance", i)])
	}
}
