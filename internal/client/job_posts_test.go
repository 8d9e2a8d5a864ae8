package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const jobPostJSON = `{
	"id": 123,
	"title": "Application Engineer",
	"location": {"id": 7, "name": "New York, NY", "office_id": null, "job_post_custom_location_id": null, "job_post_location_type": {"id": 1, "name": "Free Text"}},
	"internal": false,
	"external": true,
	"active": true,
	"live": true,
	"first_published_at": "2016-11-30T19:04:56.193Z",
	"job_id": 107761,
	"content": "<p>Join us</p>",
	"internal_content": "",
	"updated_at": "2017-03-23T20:13:14.386Z",
	"created_at": "2016-11-30T19:04:55.964Z",
	"demographic_question_set_id": null,
	"questions": [{"required": true, "private": false, "label": "First Name", "name": "first_name", "type": "short_text", "values": [], "description": null}]
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestJobPostsClient_Requests(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []endpointTest{
		{
			name: "List",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().List(ctx, &harvest.ListJobPostsParams{
					Live:        harvest.Bool(true),
					FullContent: harvest.Bool(false),
				})
			},
			response:   "[" + jobPostJSON + "]",
			wantMethod: http.MethodGet,
			wantPath:   "/v1/job_posts",
			wantQuery: url.Values{
				"live":         []string{"true"},
				"full_content": []string{"false"},
			},
		},
		{
			name: "Get with full content",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().Get(ctx, 123, &harvest.GetJobPostParams{FullContent: harvest.Bool(true)})
			},
			response:   jobPostJSON,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/job_posts/123",
			wantQuery:  url.Values{"full_content": []string{"true"}},
		},
		{
			name: "Get without params",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().Get(ctx, 123, nil)
			},
			response:   jobPostJSON,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/job_posts/123",
		},
		{
			name: "ListForJob",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().ListForJob(ctx, 107761, &harvest.ListJobPostsForJobParams{Active: harvest.Bool(true)})
			},
			response:   "[" + jobPostJSON + "]",
			wantMethod: http.MethodGet,
			wantPath:   "/v1/jobs/107761/job_posts",
			wantQuery:  url.Values{"active": []string{"true"}},
		},
		{
			name: "GetForJob",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().GetForJob(ctx, 107761, &harvest.GetJobPostForJobParams{
					Content:   harvest.Bool(true),
					Questions: harvest.Bool(true),
				})
			},
			response:   jobPostJSON,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/jobs/107761/job_post",
			wantQuery: url.Values{
				"content":   []string{"true"},
				"questions": []string{"true"},
			},
		},
		{
			name: "ListCustomLocations",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().ListCustomLocations(ctx, 123)
			},
			response:   `[{"id":1,"value":"Remote","active":true,"greenhouse_job_board_id":9,"created_at":"2020-01-01T00:00:00Z","updated_at":"2020-01-01T00:00:00Z"}]`,
			wantMethod: http.MethodGet,
			wantPath:   "/v1/job_posts/123/custom_locations",
		},
		{
			name: "Update stringifies the actor",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().Update(ctx, 123, &harvest.UpdateJobPostParams{
					Title:            "Senior Application Engineer",
					LocationOfficeID: 47012,
				}, 4080)
			},
			response:   `{"success":true}`,
			wantMethod: http.MethodPatch,
			wantPath:   "/v2/job_posts/123",
			wantBody:   `{"title":"Senior Application Engineer","location.office_id":47012}`,
			wantOBO:    "4080",
		},
		{
			name: "UpdateStatus",
			call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.JobPosts().UpdateStatus(ctx, 123, &harvest.UpdateJobPostStatusParams{Status: harvest.JobPostStatusOffline}, 4080)
			},
			response:   `{"success":true}`,
			wantMethod: http.MethodPatch,
			wantPath:   "/v2/job_posts/123/status",
			wantBody:   `{"status":"offline"}`,
			wantOBO:    "4080",
		},
	})
}

func TestJobPostsClient_Get_Decodes(t *testing.T) {
	t.Parallel()

	server := newCaptureServer(t, http.StatusOK, jobPostJSON)
	client := NewTestClient(t, server.URL)

	post, err := client.JobPosts().Get(context.Background(), 123, nil)
	require.NoError(t, err)
	assert.Equal(t, "Application Engineer", post.Title)
	require.NotNil(t, post.Location)
	assert.Nil(t, post.Location.OfficeID)
	assert.Equal(t, "Free Text", post.Location.JobPostLocationType.Name)
	assert.Nil(t, post.DemographicQuestionSetID)
	require.Len(t, post.Questions, 1)
	assert.True(t, post.Questions[0].Required)
}

func TestJobPostsClient_UpdateStatus_Validation(t *testing.T) {
	t.Parallel()

	server := newCaptureServer(t, http.StatusOK, "{}")
	client := NewTestClient(t, server.URL)

	_, err := client.JobPosts().UpdateStatus(context.Background(), 123, &harvest.UpdateJobPostStatusParams{Status: "draft"}, 4080)
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.Zero(t, server.count())
}
