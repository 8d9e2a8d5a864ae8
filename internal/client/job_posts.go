package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const (
	jobPostsPath   = "/v1/job_posts"
	jobPostsV2Path = "/v2/job_posts"
)

// JobPostsClient implements harvest.JobPostsClient.
type JobPostsClient struct {
	httpClient *http.Client
}

// NewJobPostsClient creates a new job posts client.
func NewJobPostsClient(httpClient *http.Client) *JobPostsClient {
	return &JobPostsClient{
		httpClient: httpClient,
	}
}

// List implements harvest.JobPostsClient.List.
func (c *JobPostsClient) List(ctx context.Context, params *harvest.ListJobPostsParams) ([]harvest.JobPost, error) {
	err := validateOptional(params)
	if err != nil {
		return nil, fmt.Errorf("listing job posts: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing job posts: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, jobPostsPath, query)
	if err != nil {
		return nil, fmt.Errorf("listing job posts: %w", err)
	}

	return parseJobPosts(resp)
}

// Get implements harvest.JobPostsClient.Get.
func (c *JobPostsClient) Get(ctx context.Context, id int64, params *harvest.GetJobPostParams) (*harvest.JobPost, error) {
	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("getting job post: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, idPath(jobPostsPath, id), query)
	if err != nil {
		return nil, fmt.Errorf("getting job post: %w", err)
	}

	return parseJobPost(resp)
}

// ListForJob implements harvest.JobPostsClient.ListForJob.
func (c *JobPostsClient) ListForJob(ctx context.Context, jobID int64, params *harvest.ListJobPostsForJobParams) ([]harvest.JobPost, error) {
	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing job posts for job: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, idPath(jobsPath, jobID)+"/job_posts", query)
	if err != nil {
		return nil, fmt.Errorf("listing job posts for job: %w", err)
	}

	return parseJobPosts(resp)
}

// GetForJob implements harvest.JobPostsClient.GetForJob.
func (c *JobPostsClient) GetForJob(ctx context.Context, jobID int64, params *harvest.GetJobPostForJobParams) (*harvest.JobPost, error) {
	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("getting job post for job: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, idPath(jobsPath, jobID)+"/job_post", query)
	if err != nil {
		return nil, fmt.Errorf("getting job post for job: %w", err)
	}

	return parseJobPost(resp)
}

// ListCustomLocations implements harvest.JobPostsClient.ListCustomLocations.
func (c *JobPostsClient) ListCustomLocations(ctx context.Context, id int64) ([]harvest.CustomLocation, error) {
	resp, err := c.httpClient.Get(ctx, idPath(jobPostsPath, id)+"/custom_locations", nil)
	if err != nil {
		return nil, fmt.Errorf("listing custom locations: %w", err)
	}

	var locations []harvest.CustomLocation

	err = json.Unmarshal(resp.Body, &locations)
	if err != nil {
		return nil, fmt.Errorf("parsing custom locations response: %w", err)
	}

	return locations, nil
}

// Update implements harvest.JobPostsClient.Update.
func (c *JobPostsClient) Update(ctx context.Context, id int64, params *harvest.UpdateJobPostParams, onBehalfOfUser int64) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating job post: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(jobPostsV2Path, id),
		Body:    params,
		Headers: onBehalfOfID(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating job post: %w", err)
	}

	return parseSuccess(resp, "update job post response")
}

// UpdateStatus implements harvest.JobPostsClient.UpdateStatus.
func (c *JobPostsClient) UpdateStatus(ctx context.Context, id int64, params *harvest.UpdateJobPostStatusParams, onBehalfOfUser int64) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating job post status: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(jobPostsV2Path, id) + "/status",
		Body:    params,
		Headers: onBehalfOfID(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating job post status: %w", err)
	}

	return parseSuccess(resp, "update job post status response")
}

func parseJobPost(resp *http.Response) (*harvest.JobPost, error) {
	var post harvest.JobPost

	err := json.Unmarshal(resp.Body, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing job post: %w", err)
	}

	return &post, nil
}

func parseJobPosts(resp *http.Response) ([]harvest.JobPost, error) {
	var posts []harvest.JobPost

	err := json.Unmarshal(resp.Body, &posts)
	if err != nil {
		return nil, fmt.Errorf("parsing job posts list response: %w", err)
	}

	return posts, nil
}
