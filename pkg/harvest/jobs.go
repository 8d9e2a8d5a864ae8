package harvest

import (
	"time"
)

// Job statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Department is an organizational unit.
type Department struct {
	ID         int64   `json:"id"          yaml:"id"`
	Name       string  `json:"name"        yaml:"name"`
	ParentID   *int64  `json:"parent_id"   yaml:"parent_id"`
	ChildIDs   []int64 `json:"child_ids"   yaml:"child_ids"`
	ExternalID *string `json:"external_id" yaml:"external_id"`
}

// OfficeLocation is the named location of an office.
type OfficeLocation struct {
	Name string `json:"name" yaml:"name"`
}

// Office is a physical or virtual office.
type Office struct {
	ID                     int64          `json:"id"                               yaml:"id"`
	Name                   string         `json:"name"                             yaml:"name"`
	Location               OfficeLocation `json:"location"                         yaml:"location"`
	PrimaryContactUserID   *int64         `json:"primary_contact_user_id"          yaml:"primary_contact_user_id"`
	ParentID               *int64         `json:"parent_id"                        yaml:"parent_id"`
	ParentOfficeExternalID *string        `json:"parent_office_external_id,omitempty" yaml:"parent_office_external_id,omitempty"`
	ChildIDs               []int64        `json:"child_ids"                        yaml:"child_ids"`
	ChildOfficeExternalIDs []string       `json:"child_office_external_ids,omitempty" yaml:"child_office_external_ids,omitempty"`
	ExternalID             *string        `json:"external_id"                      yaml:"external_id"`
}

// ResponsibleMember is a recruiter or coordinator with a responsibility flag.
type ResponsibleMember struct {
	UserRef     `yaml:",inline"`
	Responsible bool `json:"responsible" yaml:"responsible"`
}

// HiringTeam groups the members of a job's hiring team as embedded in Job.
type HiringTeam struct {
	HiringManagers []HiringTeamMember  `json:"hiring_managers" yaml:"hiring_managers"`
	Recruiters     []ResponsibleMember `json:"recruiters"      yaml:"recruiters"`
	Coordinators   []ResponsibleMember `json:"coordinators"    yaml:"coordinators"`
	Sourcers       []HiringTeamMember  `json:"sourcers"        yaml:"sourcers"`
}

// Opening is a headcount slot on a job.
type Opening struct {
	ID                int64             `json:"id"                  yaml:"id"`
	OpeningID         *string           `json:"opening_id"          yaml:"opening_id"`
	Status            string            `json:"status"              yaml:"status"`
	OpenedAt          time.Time         `json:"opened_at"           yaml:"opened_at"`
	ClosedAt          *time.Time        `json:"closed_at"           yaml:"closed_at"`
	ApplicationID     *int64            `json:"application_id"      yaml:"application_id"`
	CloseReason       *NamedRef         `json:"close_reason"        yaml:"close_reason"`
	CustomFields      CustomFields      `json:"custom_fields"       yaml:"custom_fields"`
	KeyedCustomFields KeyedCustomFields `json:"keyed_custom_fields" yaml:"keyed_custom_fields"`
}

// Job is a requisition in Greenhouse.
type Job struct {
	ID                int64             `json:"id"                  yaml:"id"`
	Name              string            `json:"name"                yaml:"name"`
	RequisitionID     *string           `json:"requisition_id"      yaml:"requisition_id"`
	Notes             *string           `json:"notes"               yaml:"notes"`
	Confidential      bool              `json:"confidential"        yaml:"confidential"`
	Status            string            `json:"status"              yaml:"status"`
	CreatedAt         time.Time         `json:"created_at"          yaml:"created_at"`
	OpenedAt          *time.Time        `json:"opened_at"           yaml:"opened_at"`
	ClosedAt          *time.Time        `json:"closed_at"           yaml:"closed_at"`
	UpdatedAt         time.Time         `json:"updated_at"          yaml:"updated_at"`
	IsTemplate        bool              `json:"is_template"         yaml:"is_template"`
	CopiedFromID      *int64            `json:"copied_from_id"      yaml:"copied_from_id"`
	Departments       []Department      `json:"departments"         yaml:"departments"`
	Offices           []Office          `json:"offices"             yaml:"offices"`
	CustomFields      CustomFields      `json:"custom_fields"       yaml:"custom_fields"`
	KeyedCustomFields KeyedCustomFields `json:"keyed_custom_fields" yaml:"keyed_custom_fields"`
	HiringTeam        HiringTeam        `json:"hiring_team"         yaml:"hiring_team"`
	Openings          []Opening         `json:"openings"            yaml:"openings"`
}

// HiringTeamAssignment is one entry of the standalone hiring team resource.
type HiringTeamAssignment struct {
	UserID      int64 `json:"user_id"               yaml:"user_id"`
	Active      bool  `json:"active"                yaml:"active"`
	Responsible *bool `json:"responsible,omitempty" yaml:"responsible,omitempty"`
}

// JobHiringTeam is returned by GET /v1/jobs/{id}/hiring_team.
type JobHiringTeam struct {
	HiringManagers []HiringTeamAssignment `json:"hiring_managers" yaml:"hiring_managers"`
	Recruiters     []HiringTeamAssignment `json:"recruiters"      yaml:"recruiters"`
	Coordinators   []HiringTeamAssignment `json:"coordinators"    yaml:"coordinators"`
	Sourcers       []HiringTeamAssignment `json:"sourcers"        yaml:"sourcers"`
}

// ListJobsParams filters GET /v1/jobs.
type ListJobsParams struct {
	Pagination

	SkipCount            *bool  `url:"skip_count,omitempty"`
	CreatedBefore        string `url:"created_before,omitempty"`
	CreatedAfter         string `url:"created_after,omitempty"`
	UpdatedBefore        string `url:"updated_before,omitempty"`
	UpdatedAfter         string `url:"updated_after,omitempty"`
	RequisitionID        string `url:"requisition_id,omitempty"`
	OpeningID            string `url:"opening_id,omitempty"`
	Status               string `url:"status,omitempty"                 validate:"omitempty,oneof=open closed draft"`
	DepartmentID         int64  `url:"department_id,omitempty"`
	ExternalDepartmentID string `url:"external_department_id,omitempty"`
	OfficeID             int64  `url:"office_id,omitempty"`
	ExternalOfficeID     string `url:"external_office_id,omitempty"`
	CustomFieldOptionID  int64  `url:"custom_field_option_id,omitempty"`
}

// CreateJobParams is the body of POST /v1/jobs.
type CreateJobParams struct {
	TemplateJobID        int64    `json:"template_job_id"                  validate:"required"`
	NumberOfOpenings     int      `json:"number_of_openings"               validate:"required,min=1"`
	JobPostName          string   `json:"job_post_name,omitempty"`
	JobName              string   `json:"job_name,omitempty"`
	DepartmentID         int64    `json:"department_id,omitempty"`
	ExternalDepartmentID string   `json:"external_department_id,omitempty"`
	OfficeIDs            []int64  `json:"office_ids,omitempty"`
	ExternalOfficeIDs    []string `json:"external_office_ids,omitempty"`
	RequisitionID        string   `json:"requisition_id,omitempty"`
	OpeningIDs           []string `json:"opening_ids,omitempty"`
}

// UpdateJobParams is the body of PATCH /v1/jobs/{id}.
type UpdateJobParams struct {
	Name                    string             `json:"name,omitempty"`
	Notes                   string             `json:"notes,omitempty"`
	Anywhere                *bool              `json:"anywhere,omitempty"`
	RequisitionID           string             `json:"requisition_id,omitempty"`
	TeamAndResponsibilities string             `json:"team_and_responsibilities,omitempty"`
	HowToSellThisJob        string             `json:"how_to_sell_this_job,omitempty"`
	CustomFields            []CustomFieldValue `json:"custom_fields,omitempty"`
	OfficeIDs               []int64            `json:"office_ids,omitempty"`
	ExternalOfficeIDs       []string           `json:"external_office_ids,omitempty"`
	DepartmentID            int64              `json:"department_id,omitempty"`
	ExternalDepartmentID    string             `json:"external_department_id,omitempty"`
}

// HiringTeamMemberInput adds a user to a hiring team role.
type HiringTeamMemberInput struct {
	UserID                           int64 `json:"user_id"                                       validate:"required"`
	ResponsibleForFutureCandidates   *bool `json:"responsible_for_future_candidates,omitempty"`
	ResponsibleForActiveCandidates   *bool `json:"responsible_for_active_candidates,omitempty"`
	ResponsibleForInactiveCandidates *bool `json:"responsible_for_inactive_candidates,omitempty"`
}

// UpdateHiringTeamParams is the body of the hiring team PUT and POST calls.
type UpdateHiringTeamParams struct {
	HiringManagers []HiringTeamMemberInput `json:"hiring_managers,omitempty" validate:"omitempty,dive"`
	Sourcers       []HiringTeamMemberInput `json:"sourcers,omitempty"        validate:"omitempty,dive"`
	Recruiters     []HiringTeamMemberInput `json:"recruiters,omitempty"      validate:"omitempty,dive"`
	Coordinators   []HiringTeamMemberInput `json:"coordinators,omitempty"    validate:"omitempty,dive"`
}

// RemoveHiringTeamParams is the body of DELETE /v1/jobs/{id}/hiring_team.
// Each list holds user IDs to remove from that role.
type RemoveHiringTeamParams struct {
	HiringManagers []int64 `json:"hiring_managers,omitempty"`
	Sourcers       []int64 `json:"sourcers,omitempty"`
	Recruiters     []int64 `json:"recruiters,omitempty"`
	Coordinators   []int64 `json:"coordinators,omitempty"`
}
