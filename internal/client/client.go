package client

import (
	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// Client implements the harvest.Client interface. It owns one transport that
// every resource client shares.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     harvest.Logger

	// Resource clients
	applications harvest.ApplicationsClient
	candidates   harvest.CandidatesClient
	customFields harvest.CustomFieldsClient
	jobs         harvest.JobsClient
	jobPosts     harvest.JobPostsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *harvest.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new Harvest API client.
func New(config *harvest.Config) (*Client, error) {
	if config == nil {
		return nil, harvest.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, harvest.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	logger := config.Logger
	if logger == nil {
		logger = harvest.NopLogger{}
	}

	httpClient := http.NewClient(baseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.applications = NewApplicationsClient(c.httpClient)
	c.candidates = NewCandidatesClient(c.httpClient)
	c.customFields = NewCustomFieldsClient(c.httpClient)
	c.jobs = NewJobsClient(c.httpClient)
	c.jobPosts = NewJobPostsClient(c.httpClient)
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Applications implements harvest.Client.Applications.
func (c *Client) Applications() harvest.ApplicationsClient {
	return c.applications
}

// Candidates implements harvest.Client.Candidates.
func (c *Client) Candidates() harvest.CandidatesClient {
	return c.candidates
}

// CustomFields implements harvest.Client.CustomFields.
func (c *Client) CustomFields() harvest.CustomFieldsClient {
	return c.customFields
}

// Jobs implements harvest.Client.Jobs.
func (c *Client) Jobs() harvest.JobsClient {
	return c.jobs
}

// JobPosts implements harvest.Client.JobPosts.
func (c *Client) JobPosts() harvest.JobPostsClient {
	return c.jobPosts
}
