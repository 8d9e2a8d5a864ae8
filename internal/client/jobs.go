package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const jobsPath = "/v1/jobs"

// JobsClient implements harvest.JobsClient.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{
		httpClient: httpClient,
	}
}

// List implements harvest.JobsClient.List.
func (c *JobsClient) List(ctx context.Context, params *harvest.ListJobsParams) ([]harvest.Job, error) {
	err := validateOptional(params)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, jobsPath, query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	var jobs []harvest.Job

	err = json.Unmarshal(resp.Body, &jobs)
	if err != nil {
		return nil, fmt.Errorf("parsing jobs list response: %w", err)
	}

	return jobs, nil
}

// Get implements harvest.JobsClient.Get.
func (c *JobsClient) Get(ctx context.Context, id int64) (*harvest.Job, error) {
	resp, err := c.httpClient.Get(ctx, idPath(jobsPath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	return parseJob(resp, "job")
}

// Create implements harvest.JobsClient.Create.
func (c *JobsClient) Create(ctx context.Context, params *harvest.CreateJobParams) (*harvest.Job, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, jobsPath, params)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	return parseJob(resp, "created job")
}

// Update implements harvest.JobsClient.Update.
func (c *JobsClient) Update(ctx context.Context, id int64, params *harvest.UpdateJobParams) (*harvest.Job, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating job: %w", err)
	}

	resp, err := c.httpClient.Patch(ctx, idPath(jobsPath, id), params)
	if err != nil {
		return nil, fmt.Errorf("updating job: %w", err)
	}

	return parseJob(resp, "updated job")
}

// GetHiringTeam implements harvest.JobsClient.GetHiringTeam.
func (c *JobsClient) GetHiringTeam(ctx context.Context, id int64) (*harvest.JobHiringTeam, error) {
	resp, err := c.httpClient.Get(ctx, idPath(jobsPath, id)+"/hiring_team", nil)
	if err != nil {
		return nil, fmt.Errorf("getting hiring team: %w", err)
	}

	var team harvest.JobHiringTeam

	err = json.Unmarshal(resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing hiring team: %w", err)
	}

	return &team, nil
}

// ReplaceHiringTeam implements harvest.JobsClient.ReplaceHiringTeam.
func (c *JobsClient) ReplaceHiringTeam(ctx context.Context, id int64, params *harvest.UpdateHiringTeamParams) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("replacing hiring team: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, idPath(jobsPath, id)+"/hiring_team", params)
	if err != nil {
		return nil, fmt.Errorf("replacing hiring team: %w", err)
	}

	return parseSuccess(resp, "replace hiring team response")
}

// AddHiringTeamMembers implements harvest.JobsClient.AddHiringTeamMembers.
func (c *JobsClient) AddHiringTeamMembers(ctx context.Context, id int64, params *harvest.UpdateHiringTeamParams) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding hiring team members: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, idPath(jobsPath, id)+"/hiring_team", params)
	if err != nil {
		return nil, fmt.Errorf("adding hiring team members: %w", err)
	}

	return parseSuccess(resp, "add hiring team members response")
}

// RemoveHiringTeamMembers implements harvest.JobsClient.RemoveHiringTeamMembers.
// The user IDs to remove are sent as a DELETE body.
func (c *JobsClient) RemoveHiringTeamMembers(ctx context.Context, id int64, params *harvest.RemoveHiringTeamParams) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("removing hiring team members: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodDelete,
		Path:   idPath(jobsPath, id) + "/hiring_team",
		Body:   params,
	})
	if err != nil {
		return nil, fmt.Errorf("removing hiring team members: %w", err)
	}

	return parseSuccess(resp, "remove hiring team members response")
}

func parseJob(resp *http.Response, what string) (*harvest.Job, error) {
	var job harvest.Job

	err := json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &job, nil
}
