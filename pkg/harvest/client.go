package harvest

import (
	"context"
	"net/http"
	"time"
)

// Client is the main interface for the Harvest API client.
type Client interface {
	Applications() ApplicationsClient
	Candidates() CandidatesClient
	CustomFields() CustomFieldsClient
	Jobs() JobsClient
	JobPosts() JobPostsClient
}

// ApplicationsClient defines operations for applications. Every call sends
// onBehalfOf as the On-Behalf-Of header unless it is empty.
type ApplicationsClient interface {
	List(ctx context.Context, params *ListApplicationsParams, onBehalfOf string) ([]Application, error)
	Get(ctx context.Context, id int64, onBehalfOf string) (*Application, error)
	Delete(ctx context.Context, id int64, onBehalfOf string) (*MessageResult, error)
	Add(ctx context.Context, candidateID int64, params *AddApplicationParams, onBehalfOf string) (*Application, error)
	Update(ctx context.Context, id int64, params *UpdateApplicationParams, onBehalfOf string) (*Application, error)
	Advance(ctx context.Context, id int64, params *AdvanceApplicationParams, onBehalfOf string) (*Application, error)
	Move(ctx context.Context, id int64, params *MoveApplicationParams, onBehalfOf string) (*Application, error)
	Transfer(ctx context.Context, id int64, params *TransferApplicationParams, onBehalfOf string) (*Application, error)
	ConvertProspect(ctx context.Context, id int64, params *ConvertProspectParams, onBehalfOf string) (*ConvertProspectResult, error)
	AddAttachment(ctx context.Context, id int64, params *AddApplicationAttachmentParams, onBehalfOf string) (*AttachmentResult, error)
	Hire(ctx context.Context, id int64, params *HireApplicationParams, onBehalfOf string) (*Application, error)
	Reject(ctx context.Context, id int64, params *RejectApplicationParams, onBehalfOf string) (*Application, error)
	UpdateRejectionReason(ctx context.Context, id int64, params *UpdateRejectionReasonParams, onBehalfOf string) (*UpdateRejectionReasonResult, error)
	Unreject(ctx context.Context, id int64, onBehalfOf string) (*Application, error)
}

// CandidatesClient defines operations for candidates.
type CandidatesClient interface {
	List(ctx context.Context, params *ListCandidatesParams) ([]Candidate, error)
	Get(ctx context.Context, id int64) (*Candidate, error)
	Delete(ctx context.Context, id int64) (*MessageResult, error)
	Update(ctx context.Context, id int64, params *UpdateCandidateParams) (*Candidate, error)
	Add(ctx context.Context, params *AddCandidateParams) (*Candidate, error)
	AddNote(ctx context.Context, candidateID int64, params *AddNoteParams) (*Note, error)
	AddEmailNote(ctx context.Context, candidateID int64, params *AddEmailNoteParams) (*EmailNote, error)
	AddEducation(ctx context.Context, candidateID int64, params *EducationInput) (*Education, error)
	DeleteEducation(ctx context.Context, candidateID, educationID int64) (*SuccessResult, error)
	AddEmployment(ctx context.Context, candidateID int64, params *EmploymentInput) (*Employment, error)
	DeleteEmployment(ctx context.Context, candidateID, employmentID int64) (*SuccessResult, error)
	AddAttachment(ctx context.Context, candidateID int64, params *AddCandidateAttachmentParams) (*AttachmentResult, error)
	Anonymize(ctx context.Context, id int64, params *AnonymizeCandidateParams) (*Candidate, error)
	Merge(ctx context.Context, params *MergeCandidatesParams) (*Candidate, error)
}

// CustomFieldsClient defines operations for custom fields and their options.
type CustomFieldsClient interface {
	List(ctx context.Context, fieldType string, params *ListCustomFieldsParams, onBehalfOf string) ([]CustomField, error)
	Get(ctx context.Context, id int64, onBehalfOf string) (*CustomField, error)
	Create(ctx context.Context, params *CreateCustomFieldParams, onBehalfOf string) (*CustomField, error)
	Update(ctx context.Context, id int64, params *UpdateCustomFieldParams, onBehalfOf string) (*CustomField, error)
	Delete(ctx context.Context, id int64, onBehalfOf string) (*DeleteCustomFieldResult, error)
	// ListOptions filters by optionType ("all", "active", "inactive");
	// an empty value means "active".
	ListOptions(ctx context.Context, customFieldID int64, optionType string, onBehalfOf string) ([]CustomFieldOption, error)
	CreateOptions(ctx context.Context, customFieldID int64, params *CreateCustomFieldOptionsParams, onBehalfOf string) (*SuccessResult, error)
	UpdateOptions(ctx context.Context, customFieldID int64, params *UpdateCustomFieldOptionsParams, onBehalfOf string) (*SuccessResult, error)
	RemoveOptions(ctx context.Context, customFieldID int64, params *RemoveCustomFieldOptionsParams, onBehalfOf string) (*MessageResult, error)
}

// JobsClient defines operations for jobs and hiring teams.
type JobsClient interface {
	List(ctx context.Context, params *ListJobsParams) ([]Job, error)
	Get(ctx context.Context, id int64) (*Job, error)
	Create(ctx context.Context, params *CreateJobParams) (*Job, error)
	Update(ctx context.Context, id int64, params *UpdateJobParams) (*Job, error)
	GetHiringTeam(ctx context.Context, id int64) (*JobHiringTeam, error)
	ReplaceHiringTeam(ctx context.Context, id int64, params *UpdateHiringTeamParams) (*SuccessResult, error)
	AddHiringTeamMembers(ctx context.Context, id int64, params *UpdateHiringTeamParams) (*SuccessResult, error)
	RemoveHiringTeamMembers(ctx context.Context, id int64, params *RemoveHiringTeamParams) (*SuccessResult, error)
}

// JobPostsClient defines operations for job posts. The v2 write endpoints
// take the acting user as a numeric ID.
type JobPostsClient interface {
	List(ctx context.Context, params *ListJobPostsParams) ([]JobPost, error)
	Get(ctx context.Context, id int64, params *GetJobPostParams) (*JobPost, error)
	ListForJob(ctx context.Context, jobID int64, params *ListJobPostsForJobParams) ([]JobPost, error)
	GetForJob(ctx context.Context, jobID int64, params *GetJobPostForJobParams) (*JobPost, error)
	ListCustomLocations(ctx context.Context, id int64) ([]CustomLocation, error)
	Update(ctx context.Context, id int64, params *UpdateJobPostParams, onBehalfOf int64) (*SuccessResult, error)
	UpdateStatus(ctx context.Context, id int64, params *UpdateJobPostStatusParams, onBehalfOf int64) (*SuccessResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a harvest.Client.
//
// Only APIKey is required. The key is sent as the Basic auth username with an
// empty password on every request.
type Config struct {
	// APIKey: Harvest API key.
	APIKey string `json:"api_key" yaml:"api_key"`
	// BaseURL: defaults to https://harvest.greenhouse.io. A trailing slash is trimmed.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// HTTPTimeout: overall timeout of the underlying http.Client. Zero uses the default.
	HTTPTimeout time.Duration `json:"http_timeout,omitempty" yaml:"http_timeout,omitempty"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	// Debug: logs every request and response at debug level.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// Logger: optional structured logger. Failures are always logged at error level.
	Logger Logger `json:"-" yaml:"-"`
	// HTTPClient: optional client to send requests with, mainly for tests.
	HTTPClient *http.Client `json:"-" yaml:"-"`
}
