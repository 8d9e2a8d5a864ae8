package harvest

import (
	"time"
)

// Job post statuses accepted by UpdateStatus.
const (
	JobPostStatusLive    = "live"
	JobPostStatusOffline = "offline"
)

// JobPostLocation is the location shown on a job post.
type JobPostLocation struct {
	ID                      int64    `json:"id"                          yaml:"id"`
	Name                    string   `json:"name"                        yaml:"name"`
	OfficeID                *int64   `json:"office_id"                   yaml:"office_id"`
	JobPostCustomLocationID *int64   `json:"job_post_custom_location_id" yaml:"job_post_custom_location_id"`
	JobPostLocationType     NamedRef `json:"job_post_location_type"      yaml:"job_post_location_type"`
}

// JobPostQuestionValue is one choice of a select question.
type JobPostQuestionValue struct {
	Value int64  `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// JobPostQuestion is an application form question.
type JobPostQuestion struct {
	Required    bool                   `json:"required"    yaml:"required"`
	Private     bool                   `json:"private"     yaml:"private"`
	Label       string                 `json:"label"       yaml:"label"`
	Name        string                 `json:"name"        yaml:"name"`
	Type        string                 `json:"type"        yaml:"type"`
	Values      []JobPostQuestionValue `json:"values"      yaml:"values"`
	Description *string                `json:"description" yaml:"description"`
}

// JobPost is a published or draft posting for a job.
type JobPost struct {
	ID                       int64             `json:"id"                          yaml:"id"`
	Title                    string            `json:"title"                       yaml:"title"`
	Location                 *JobPostLocation  `json:"location"                    yaml:"location"`
	Internal                 bool              `json:"internal"                    yaml:"internal"`
	External                 bool              `json:"external"                    yaml:"external"`
	Active                   bool              `json:"active"                      yaml:"active"`
	Live                     bool              `json:"live"                        yaml:"live"`
	FirstPublishedAt         *time.Time        `json:"first_published_at"          yaml:"first_published_at"`
	JobID                    int64             `json:"job_id"                      yaml:"job_id"`
	Content                  string            `json:"content"                     yaml:"content"`
	InternalContent          string            `json:"internal_content"            yaml:"internal_content"`
	UpdatedAt                time.Time         `json:"updated_at"                  yaml:"updated_at"`
	CreatedAt                time.Time         `json:"created_at"                  yaml:"created_at"`
	DemographicQuestionSetID *int64            `json:"demographic_question_set_id" yaml:"demographic_question_set_id"`
	Questions                []JobPostQuestion `json:"questions"                   yaml:"questions"`
}

// CustomLocation is a free-form location configured on a job board.
type CustomLocation struct {
	ID                    int64     `json:"id"                      yaml:"id"`
	Value                 string    `json:"value"                   yaml:"value"`
	Active                bool      `json:"active"                  yaml:"active"`
	GreenhouseJobBoardID  int64     `json:"greenhouse_job_board_id" yaml:"greenhouse_job_board_id"`
	CreatedAt             time.Time `json:"created_at"              yaml:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"              yaml:"updated_at"`
}

// ListJobPostsParams filters GET /v1/job_posts.
type ListJobPostsParams struct {
	Pagination

	SkipCount     *bool  `url:"skip_count,omitempty"`
	CreatedBefore string `url:"created_before,omitempty"`
	CreatedAfter  string `url:"created_after,omitempty"`
	UpdatedBefore string `url:"updated_before,omitempty"`
	UpdatedAfter  string `url:"updated_after,omitempty"`
	Live          *bool  `url:"live,omitempty"`
	Active        *bool  `url:"active,omitempty"`
	FullContent   *bool  `url:"full_content,omitempty"`
	Internal      *bool  `url:"internal,omitempty"`
}

// GetJobPostParams is the query of GET /v1/job_posts/{id}.
type GetJobPostParams struct {
	FullContent *bool `url:"full_content,omitempty"`
}

// ListJobPostsForJobParams is the query of GET /v1/jobs/{jobID}/job_posts.
type ListJobPostsForJobParams struct {
	Active      *bool `url:"active,omitempty"`
	FullContent *bool `url:"full_content,omitempty"`
}

// GetJobPostForJobParams is the query of GET /v1/jobs/{jobID}/job_post.
type GetJobPostForJobParams struct {
	Content     *bool `url:"content,omitempty"`
	Questions   *bool `url:"questions,omitempty"`
	FullContent *bool `url:"full_content,omitempty"`
}

// UpdateJobPostParams is the body of PATCH /v2/job_posts/{id}.
type UpdateJobPostParams struct {
	Title                    string `json:"title,omitempty"`
	Location                 string `json:"location,omitempty"`
	LocationOfficeID         int64  `json:"location.office_id,omitempty"`
	LocationCustomLocationID int64  `json:"location.custom_location_id,omitempty"`
	Content                  string `json:"content,omitempty"`
}

// UpdateJobPostStatusParams is the body of PATCH /v2/job_posts/{id}/status.
type UpdateJobPostStatusParams struct {
	Status string `json:"status" validate:"required,oneof=live offline"`
}
