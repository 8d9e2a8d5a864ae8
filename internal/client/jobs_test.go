package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const jobJSON = `{
	"id": 6404,
	"name": "Archaeologist",
	"requisition_id": "abc-123",
	"notes": null,
	"confidential": false,
	"status": "open",
	"created_at": "2013-12-10T14:42:58Z",
	"opened_at": "2013-12-11T14:42:58Z",
	"closed_at": null,
	"updated_at": "2013-12-12T14:42:58Z",
	"is_template": false,
	"copied_from_id": 2345,
	"departments": [{"id": 25907, "name": "Second-Level department", "parent_id": 25908, "child_ids": [], "external_id": null}],
	"offices": [{"id": 47012, "name": "New York", "location": {"name": "New York, United States"}, "primary_contact_user_id": 150893, "parent_id": null, "child_ids": [], "external_id": null}],
	"hiring_team": {
		"hiring_managers": [{"id": 84275, "first_name": "Kaylee", "last_name": "Prime", "name": "Kaylee Prime", "employee_id": "13636"}],
		"recruiters": [{"id": 729, "first_name": "Jane", "last_name": "Doe", "name": "Jane Doe", "employee_id": null, "responsible": true}],
		"coordinators": [],
		"sourcers": []
	},
	"openings": [{"id": 123, "opening_id": "3-1", "status": "open", "opened_at": "2015-11-20T23:14:14.736Z", "closed_at": null, "application_id": null, "close_reason": null}]
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestJobsClient_Requests(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []endpointTest{
		{
			name: "List",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().List(ctx, &harvest.ListJobsParams{
					Pagination:   harvest.Pagination{Page: 3},
					Status:       harvest.JobStatusOpen,
					DepartmentID: 25907,
				})
			},
			response:   "[" + jobJSON + "]",
			wantMethod: http.MethodGet,
			wantPath:   "/v1/jobs",
			wantQuery: url.Values{
				"page":          []string{"3"},
				"status":        []string{"open"},
				"department_id": []string{"25907"},
			},
		},
		{
			name: "Get",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().Get(ctx, 6404)
			},
			response:   jobJSON,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/jobs/6404",
		},
		{
			name: "Create",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().Create(ctx, &harvest.CreateJobParams{
					TemplateJobID:    6404,
					NumberOfOpenings: 2,
					JobPostName:      "Senior Archaeologist",
					OfficeIDs:        []int64{47012},
				})
			},
			response:   jobJSON,
			wantMethod: http.MethodPost,
			wantPath:   "/v1/jobs",
			wantBody:   `{"template_job_id":6404,"number_of_openings":2,"job_post_name":"Senior Archaeologist","office_ids":[47012]}`,
		},
		{
			name: "Update",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().Update(ctx, 6404, &harvest.UpdateJobParams{
					Name:     "Lead Archaeologist",
					Anywhere: harvest.Bool(true),
					CustomFields: []harvest.CustomFieldValue{
						{NameKey: "salary_range", MinValue: harvest.Float64(100000), MaxValue: harvest.Float64(150000), Unit: "USD"},
					},
				})
			},
			response:   jobJSON,
			wantMethod: http.MethodPatch,
			wantPath:   "/v1/jobs/6404",
			wantBody: `{"name":"Lead Archaeologist","anywhere":true,` +
				`"custom_fields":[{"name_key":"salary_range","min_value":100000,"max_value":150000,"unit":"USD"}]}`,
		},
		{
			name: "GetHiringTeam",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().GetHiringTeam(ctx, 6404)
			},
			response:   `{"hiring_managers":[{"user_id":1,"active":true}],"recruiters":[{"user_id":2,"active":true,"responsible":false}],"coordinators":[],"sourcers":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/jobs/6404/hiring_team",
		},
		{
			name: "ReplaceHiringTeam",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().ReplaceHiringTeam(ctx, 6404, &harvest.UpdateHiringTeamParams{
					HiringManagers: []harvest.HiringTeamMemberInput{{UserID: 1}},
					Recruiters:     []harvest.HiringTeamMemberInput{{UserID: 2, ResponsibleForFutureCandidates: harvest.Bool(true)}},
				})
			},
			response:   `{"success":true}`,
			wantMethod: http.MethodPut,
			wantPath:   "/v1/jobs/6404/hiring_team",
			wantBody:   `{"hiring_managers":[{"user_id":1}],"recruiters":[{"user_id":2,"responsible_for_future_candidates":true}]}`,
		},
		{
			name: "AddHiringTeamMembers",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().AddHiringTeamMembers(ctx, 6404, &harvest.UpdateHiringTeamParams{
					Sourcers: []harvest.HiringTeamMemberInput{{UserID: 3}},
				})
			},
			response:   `{"success":true}`,
			wantMethod: http.MethodPost,
			wantPath:   "/v1/jobs/6404/hiring_team",
			wantBody:   `{"sourcers":[{"user_id":3}]}`,
		},
		{
			name: "RemoveHiringTeamMembers sends a DELETE body",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Jobs().RemoveHiringTeamMembers(ctx, 6404, &harvest.RemoveHiringTeamParams{Coordinators: []int64{4, 5}})
			},
			response:   `{"success":true}`,
			wantMethod: http.MethodDelete,
			wantPath:   "/v1/jobs/6404/hiring_team",
			wantBody:   `{"coordinators":[4,5]}`,
		},
	})
}

func TestJobsClient_Get_Decodes(t *testing.T) {
	t.Parallel()

	server := newCaptureServer(t, http.StatusOK, jobJSON)
	client := NewTestClient(t, server.URL)

	job, err := client.Jobs().Get(context.Background(), 6404)
	require.NoError(t, err)
	assert.Equal(t, "Archaeologist", job.Name)
	assert.Nil(t, job.Notes)
	assert.Nil(t, job.ClosedAt)
	require.NotNil(t, job.CopiedFromID)
	assert.Equal(t, int64(2345), *job.CopiedFromID)
	require.Len(t, job.Departments, 1)
	assert.Equal(t, int64(25908), *job.Departments[0].ParentID)
	require.Len(t, job.HiringTeam.Recruiters, 1)
	assert.True(t, job.HiringTeam.Recruiters[0].Responsible)
	assert.Equal(t, "Jane Doe", job.HiringTeam.Recruiters[0].Name)
	require.Len(t, job.Openings, 1)
	assert.Equal(t, "3-1", *job.Openings[0].OpeningID)
}

func TestJobsClient_Validation(t *testing.T) {
	t.Parallel()

	server := newCaptureServer(t, http.StatusOK, "{}")
	client := NewTestClient(t, server.URL)

	_, err := client.Jobs().Create(context.Background(), &harvest.CreateJobParams{NumberOfOpenings: 1})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = client.Jobs().List(context.Background(), &harvest.ListJobsParams{Status: "archived"})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = client.Jobs().ReplaceHiringTeam(context.Background(), 1, &harvest.UpdateHiringTeamParams{
		Recruiters: []harvest.HiringTeamMemberInput{{}},
	})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = client.Jobs().Update(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrParamsRequired)

	assert.Zero(t, server.count())
}

func TestJobsClient_List_PerPageBound(t *testing.T) {
	t.Parallel()

	server := newCaptureServer(t, http.StatusOK, "[]")
	client := NewTestClient(t, server.URL)

	_, err := client.Jobs().List(context.Background(), &harvest.ListJobsParams{
		Pagination: harvest.Pagination{PerPage: constants.MaxPerPage},
	})
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(constants.MaxPerPage), server.last(t).Query.Get("per_page"))

	_, err = client.Jobs().List(context.Background(), &harvest.ListJobsParams{
		Pagination: harvest.Pagination{PerPage: constants.MaxPerPage + 1},
	})
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, 1, server.count())
}
