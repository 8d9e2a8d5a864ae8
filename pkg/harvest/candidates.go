package harvest

import (
	"strconv"
	"time"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// Candidate represents a person in Greenhouse.
type Candidate struct {
	ID                   int64             `json:"id"                     yaml:"id"`
	FirstName            string            `json:"first_name"             yaml:"first_name"`
	LastName             string            `json:"last_name"              yaml:"last_name"`
	Company              *string           `json:"company"                yaml:"company"`
	Title                *string           `json:"title"                  yaml:"title"`
	CreatedAt            time.Time         `json:"created_at"             yaml:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"             yaml:"updated_at"`
	LastActivity         time.Time         `json:"last_activity"          yaml:"last_activity"`
	IsPrivate            bool              `json:"is_private"             yaml:"is_private"`
	PhotoURL             *string           `json:"photo_url"              yaml:"photo_url"`
	Attachments          []Attachment      `json:"attachments"            yaml:"attachments"`
	ApplicationIDs       []int64           `json:"application_ids"        yaml:"application_ids"`
	PhoneNumbers         []ContactValue    `json:"phone_numbers"          yaml:"phone_numbers"`
	Addresses            []ContactValue    `json:"addresses"              yaml:"addresses"`
	EmailAddresses       []ContactValue    `json:"email_addresses"        yaml:"email_addresses"`
	WebsiteAddresses     []ContactValue    `json:"website_addresses"      yaml:"website_addresses"`
	SocialMediaAddresses []ContactValue    `json:"social_media_addresses" yaml:"social_media_addresses"`
	Recruiter            *UserRef          `json:"recruiter"              yaml:"recruiter"`
	Coordinator          *UserRef          `json:"coordinator"            yaml:"coordinator"`
	CanEmail             bool              `json:"can_email"              yaml:"can_email"`
	Tags                 []string          `json:"tags"                   yaml:"tags"`
	Applications         []Application     `json:"applications"           yaml:"applications"`
	Educations           []Education       `json:"educations"             yaml:"educations"`
	Employments          []Employment      `json:"employments"            yaml:"employments"`
	CustomFields         CustomFields      `json:"custom_fields"          yaml:"custom_fields"`
	KeyedCustomFields    KeyedCustomFields `json:"keyed_custom_fields"    yaml:"keyed_custom_fields"`
}

// Education is a school entry on a candidate.
type Education struct {
	ID         int64  `json:"id"          yaml:"id"`
	SchoolName string `json:"school_name" yaml:"school_name"`
	Degree     string `json:"degree"      yaml:"degree"`
	Discipline string `json:"discipline"  yaml:"discipline"`
	StartDate  string `json:"start_date"  yaml:"start_date"`
	EndDate    string `json:"end_date"    yaml:"end_date"`
}

// Employment is a job history entry on a candidate.
type Employment struct {
	ID          int64  `json:"id"           yaml:"id"`
	CompanyName string `json:"company_name" yaml:"company_name"`
	Title       string `json:"title"        yaml:"title"`
	StartDate   string `json:"start_date"   yaml:"start_date"`
	EndDate     string `json:"end_date"     yaml:"end_date"`
}

// Note is an activity feed note created by AddNote.
type Note struct {
	ID         int64     `json:"id"         yaml:"id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Body       string    `json:"body"       yaml:"body"`
	User       UserRef   `json:"user"       yaml:"user"`
	Private    bool      `json:"private"    yaml:"private"`
	Visibility string    `json:"visibility" yaml:"visibility"`
}

// EmailNote is an activity feed email created by AddEmailNote.
type EmailNote struct {
	ID        int64     `json:"id"         yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Subject   string    `json:"subject"    yaml:"subject"`
	Body      string    `json:"body"       yaml:"body"`
	To        string    `json:"to"         yaml:"to"`
	From      string    `json:"from"       yaml:"from"`
	CC        []string  `json:"cc"         yaml:"cc"`
	User      UserRef   `json:"user"       yaml:"user"`
}

// ListCandidatesParams filters GET /v1/candidates.
type ListCandidatesParams struct {
	Pagination

	SkipCount     *bool  `url:"skip_count,omitempty"`
	CreatedBefore string `url:"created_before,omitempty"`
	CreatedAfter  string `url:"created_after,omitempty"`
	UpdatedBefore string `url:"updated_before,omitempty"`
	UpdatedAfter  string `url:"updated_after,omitempty"`
	JobID         int64  `url:"job_id,omitempty"`
	Email         string `url:"email,omitempty"          validate:"omitempty,email"`
	// CandidateIDs is a comma separated list of at most 50 IDs.
	CandidateIDs string `url:"candidate_ids,omitempty"`
}

// EducationInput is the body of AddEducation and an entry of AddCandidateParams.
type EducationInput struct {
	SchoolID     int64  `json:"school_id,omitempty"`
	DisciplineID int64  `json:"discipline_id,omitempty"`
	DegreeID     int64  `json:"degree_id,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// EmploymentInput is the body of AddEmployment and an entry of AddCandidateParams.
type EmploymentInput struct {
	CompanyName string `json:"company_name"       validate:"required"`
	Title       string `json:"title"              validate:"required"`
	StartDate   string `json:"start_date"         validate:"required"`
	EndDate     string `json:"end_date,omitempty"`
}

// CandidateApplicationInput is an application created with a new candidate.
type CandidateApplicationInput struct {
	JobID int64 `json:"job_id" validate:"required"`
}

// AddCandidateParams is the body of POST /v1/candidates.
type AddCandidateParams struct {
	FirstName            string                      `json:"first_name"                       validate:"required"`
	LastName             string                      `json:"last_name"                        validate:"required"`
	Company              string                      `json:"company,omitempty"`
	Title                string                      `json:"title,omitempty"`
	PhoneNumbers         []ContactValue              `json:"phone_numbers,omitempty"`
	Addresses            []ContactValue              `json:"addresses,omitempty"`
	EmailAddresses       []ContactValue              `json:"email_addresses,omitempty"`
	WebsiteAddresses     []ContactValue              `json:"website_addresses,omitempty"`
	SocialMediaAddresses []ContactValue              `json:"social_media_addresses,omitempty"`
	Educations           []EducationInput            `json:"educations,omitempty"`
	Employments          []EmploymentInput           `json:"employments,omitempty"            validate:"omitempty,dive"`
	Tags                 []string                    `json:"tags,omitempty"`
	CustomFields         []CustomFieldValue          `json:"custom_fields,omitempty"`
	Recruiter            *UserSelector               `json:"recruiter,omitempty"`
	Coordinator          *UserSelector               `json:"coordinator,omitempty"`
	Applications         []CandidateApplicationInput `json:"applications"                     validate:"required,min=1,dive"`
}

// UpdateCandidateParams is the body of PATCH /v1/candidates/{id}. Every field
// is optional.
type UpdateCandidateParams struct {
	FirstName            string             `json:"first_name,omitempty"`
	LastName             string             `json:"last_name,omitempty"`
	Company              string             `json:"company,omitempty"`
	Title                string             `json:"title,omitempty"`
	IsPrivate            *bool              `json:"is_private,omitempty"`
	PhoneNumbers         []ContactValue     `json:"phone_numbers,omitempty"`
	Addresses            []ContactValue     `json:"addresses,omitempty"`
	EmailAddresses       []ContactValue     `json:"email_addresses,omitempty"`
	WebsiteAddresses     []ContactValue     `json:"website_addresses,omitempty"`
	SocialMediaAddresses []ContactValue     `json:"social_media_addresses,omitempty"`
	Tags                 []string           `json:"tags,omitempty"`
	CustomFields         []CustomFieldValue `json:"custom_fields,omitempty"`
	Recruiter            *UserSelector      `json:"recruiter,omitempty"`
	Coordinator          *UserSelector      `json:"coordinator,omitempty"`
}

// Note visibilities.
const (
	VisibilityAdminOnly = "admin_only"
	VisibilityPrivate   = "private"
	VisibilityPublic    = "public"
)

// AddNoteParams is the body of POST /v1/candidates/{id}/activity_feed/notes.
type AddNoteParams struct {
	UserID     int64  `json:"user_id"    validate:"required"`
	Body       string `json:"body"       validate:"required"`
	Visibility string `json:"visibility" validate:"required,oneof=admin_only private public"`
}

// AddEmailNoteParams is the body of POST /v1/candidates/{id}/activity_feed/emails.
type AddEmailNoteParams struct {
	UserID  int64    `json:"user_id"      validate:"required"`
	To      string   `json:"to"           validate:"required"`
	From    string   `json:"from"         validate:"required"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"      validate:"required"`
	Body    string   `json:"body"         validate:"required"`
}

// AddCandidateAttachmentParams is the body of POST /v1/candidates/{id}/attachments.
// Either Content (base64) or URL must be set.
type AddCandidateAttachmentParams struct {
	Filename    string `json:"filename"               validate:"required"`
	Type        string `json:"type"                   validate:"required,oneof=resume cover_letter admin_only"`
	Content     string `json:"content,omitempty"      validate:"required_without=URL"`
	URL         string `json:"url,omitempty"          validate:"omitempty,url"`
	ContentType string `json:"content_type,omitempty"`
}

// AnonymizeCandidateParams selects the fields erased by Anonymize.
type AnonymizeCandidateParams struct {
	// Fields is a comma separated list such as "full_name,emails".
	Fields string `url:"fields" validate:"required"`
}

// MergeCandidatesParams is the body of PUT /v1/candidates/merge.
type MergeCandidatesParams struct {
	PrimaryCandidateID   int64 `json:"primary_candidate_id"   validate:"required"`
	DuplicateCandidateID int64 `json:"duplicate_candidate_id" validate:"required,nefield=PrimaryCandidateID"`
}

// CandidateProfileURL returns the Greenhouse web URL of a candidate profile.
// It does not contact the API.
func CandidateProfileURL(candidateID int64) string {
	return constants.CandidateProfileBaseURL + strconv.FormatInt(candidateID, 10)
}
