package harvest

import (
	"time"
)

// Application statuses accepted by ListApplicationsParams.Status.
const (
	ApplicationStatusActive    = "active"
	ApplicationStatusConverted = "converted"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// Application represents a candidate's application to a job, or a prospect.
type Application struct {
	ID                    int64              `json:"id"                     yaml:"id"`
	CandidateID           int64              `json:"candidate_id"           yaml:"candidate_id"`
	Prospect              bool               `json:"prospect"               yaml:"prospect"`
	AppliedAt             time.Time          `json:"applied_at"             yaml:"applied_at"`
	RejectedAt            *time.Time         `json:"rejected_at"            yaml:"rejected_at"`
	LastActivityAt        time.Time          `json:"last_activity_at"       yaml:"last_activity_at"`
	Location              *ApplicationPlace  `json:"location"               yaml:"location"`
	Source                *ApplicationSource `json:"source"                 yaml:"source"`
	CreditedTo            *UserRef           `json:"credited_to"            yaml:"credited_to"`
	RejectionReason       *RejectionReason   `json:"rejection_reason"       yaml:"rejection_reason"`
	RejectionDetails      *RejectionDetails  `json:"rejection_details"      yaml:"rejection_details"`
	Jobs                  []NamedRef         `json:"jobs"                   yaml:"jobs"`
	JobPostID             *int64             `json:"job_post_id"            yaml:"job_post_id"`
	Status                string             `json:"status"                 yaml:"status"`
	CurrentStage          *NamedRef          `json:"current_stage"          yaml:"current_stage"`
	Answers               []Answer           `json:"answers"                yaml:"answers"`
	ProspectiveOffice     interface{}        `json:"prospective_office"     yaml:"prospective_office"`
	ProspectiveDepartment interface{}        `json:"prospective_department" yaml:"prospective_department"`
	ProspectDetail        ProspectDetail     `json:"prospect_detail"        yaml:"prospect_detail"`
	CustomFields          CustomFields       `json:"custom_fields"          yaml:"custom_fields"`
	KeyedCustomFields     KeyedCustomFields  `json:"keyed_custom_fields"    yaml:"keyed_custom_fields"`
	Attachments           []Attachment       `json:"attachments"            yaml:"attachments"`
}

// ApplicationPlace is the free-text location an applicant entered.
type ApplicationPlace struct {
	Address string `json:"address" yaml:"address"`
}

// ApplicationSource is where an application came from.
type ApplicationSource struct {
	ID         int64  `json:"id"          yaml:"id"`
	PublicName string `json:"public_name" yaml:"public_name"`
}

// RejectionReason explains why an application was rejected.
type RejectionReason struct {
	ID   int64    `json:"id"   yaml:"id"`
	Name string   `json:"name" yaml:"name"`
	Type NamedRef `json:"type" yaml:"type"`
}

// RejectionDetails carries the rejection custom fields.
type RejectionDetails struct {
	CustomFields      CustomFields      `json:"custom_fields"       yaml:"custom_fields"`
	KeyedCustomFields KeyedCustomFields `json:"keyed_custom_fields" yaml:"keyed_custom_fields"`
}

// Answer is an application question and its answer.
type Answer struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer"   yaml:"answer"`
}

// ProspectDetail is only populated on prospect applications. The members are
// left loosely typed since Harvest returns either null or a nested object.
type ProspectDetail struct {
	ProspectPool  interface{} `json:"prospect_pool"  yaml:"prospect_pool"`
	ProspectStage interface{} `json:"prospect_stage" yaml:"prospect_stage"`
	ProspectOwner interface{} `json:"prospect_owner" yaml:"prospect_owner"`
}

// Referrer credits an application to a referrer.
type Referrer struct {
	Type  string `json:"type"  yaml:"type"  validate:"required,oneof=id email outside"`
	Value string `json:"value" yaml:"value" validate:"required"`
}

// ListApplicationsParams filters GET /v1/applications.
type ListApplicationsParams struct {
	Pagination

	CreatedBefore     string `url:"created_before,omitempty"`
	CreatedAfter      string `url:"created_after,omitempty"`
	LastActivityAfter string `url:"last_activity_after,omitempty"`
	JobID             int64  `url:"job_id,omitempty"`
	Status            string `url:"status,omitempty"              validate:"omitempty,oneof=active converted hired rejected"`
}

// ApplicationAttachmentUpload is an attachment sent while creating an application.
type ApplicationAttachmentUpload struct {
	Filename    string `json:"filename"     validate:"required"`
	Type        string `json:"type"         validate:"required"`
	Content     string `json:"content"      validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

// AddApplicationParams is the body of POST /v1/candidates/{id}/applications.
type AddApplicationParams struct {
	Prospect                bool                          `json:"prospect"`
	JobIDs                  []int64                       `json:"job_ids,omitempty"`
	JobID                   int64                         `json:"job_id,omitempty"`
	SourceID                int64                         `json:"source_id,omitempty"`
	InitialStageID          int64                         `json:"initial_stage_id,omitempty"`
	Referrer                *Referrer                     `json:"referrer,omitempty"                  validate:"omitempty"`
	Attachments             []ApplicationAttachmentUpload `json:"attachments,omitempty"               validate:"omitempty,dive"`
	ProspectPoolID          int64                         `json:"prospect_pool_id,omitempty"`
	ProspectPoolStageID     int64                         `json:"prospect_pool_stage_id,omitempty"`
	ProspectOwnerID         int64                         `json:"prospect_owner_id,omitempty"`
	ProspectiveDepartmentID int64                         `json:"prospective_department_id,omitempty"`
	ProspectiveOfficeID     int64                         `json:"prospective_office_id,omitempty"`
}

// RejectionDetailsInput updates the rejection custom fields of an application.
type RejectionDetailsInput struct {
	CustomFields CustomFields `json:"custom_fields,omitempty"`
}

// UpdateApplicationParams is the body of PATCH /v1/applications/{id}.
type UpdateApplicationParams struct {
	SourceID         int64                  `json:"source_id,omitempty"`
	Referrer         *Referrer              `json:"referrer,omitempty"          validate:"omitempty"`
	CustomFields     CustomFields           `json:"custom_fields,omitempty"`
	ProspectPoolID   int64                  `json:"prospect_pool_id,omitempty"`
	ProspectStageID  int64                  `json:"prospect_stage_id,omitempty"`
	RejectionDetails *RejectionDetailsInput `json:"rejection_details,omitempty"`
}

// AdvanceApplicationParams is the body of POST /v1/applications/{id}/advance.
type AdvanceApplicationParams struct {
	FromStageID int64 `json:"from_stage_id" validate:"required"`
}

// MoveApplicationParams is the body of POST /v1/applications/{id}/move.
type MoveApplicationParams struct {
	FromStageID int64 `json:"from_stage_id" validate:"required"`
	ToStageID   int64 `json:"to_stage_id"   validate:"required"`
}

// TransferApplicationParams is the body of POST /v1/applications/{id}/transfer_to_job.
type TransferApplicationParams struct {
	NewJobID   int64 `json:"new_job_id"             validate:"required"`
	NewStageID int64 `json:"new_stage_id,omitempty"`
}

// ConvertProspectParams is the body of PATCH /v1/applications/{id}/convert_prospect.
type ConvertProspectParams struct {
	JobID          int64 `json:"job_id"                     validate:"required"`
	InitialStageID int64 `json:"initial_stage_id,omitempty"`
}

// ConvertProspectResult is returned by ConvertProspect.
type ConvertProspectResult struct {
	Success          bool  `json:"success"            yaml:"success"`
	OldApplicationID int64 `json:"old_application_id" yaml:"old_application_id"`
	NewApplicationID int64 `json:"new_application_id" yaml:"new_application_id"`
	NewJobID         int64 `json:"new_job_id"         yaml:"new_job_id"`
	NewStageID       int64 `json:"new_stage_id"       yaml:"new_stage_id"`
}

// AddApplicationAttachmentParams is the body of POST /v1/applications/{id}/attachments.
// Either Content (base64) or URL must be set.
type AddApplicationAttachmentParams struct {
	Filename    string `json:"filename"               validate:"required"`
	Type        string `json:"type"                   validate:"required,oneof=resume cover_letter other take_home_test offer_letter signed_offer_letter"`
	Content     string `json:"content,omitempty"      validate:"required_without=URL"`
	URL         string `json:"url,omitempty"          validate:"omitempty,url"`
	Visibility  string `json:"visibility,omitempty"   validate:"omitempty,oneof=public private admin_only"`
	ContentType string `json:"content_type,omitempty"`
}

// HireApplicationParams is the body of POST /v1/applications/{id}/hire.
type HireApplicationParams struct {
	StartDate     string `json:"start_date,omitempty"`
	OpeningID     int64  `json:"opening_id,omitempty"`
	CloseReasonID int64  `json:"close_reason_id,omitempty"`
}

// RejectionEmail schedules the rejection email sent to the candidate.
type RejectionEmail struct {
	SendEmailAt     string `json:"send_email_at,omitempty"`
	EmailTemplateID int64  `json:"email_template_id"       validate:"required"`
}

// RejectApplicationParams is the body of POST /v1/applications/{id}/reject.
type RejectApplicationParams struct {
	RejectionReasonID int64           `json:"rejection_reason_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	RejectionEmail    *RejectionEmail `json:"rejection_email,omitempty"     validate:"omitempty"`
}

// UpdateRejectionReasonParams is the body of PATCH /v1/applications/{id}/reject.
type UpdateRejectionReasonParams struct {
	RejectionReasonID int64 `json:"rejection_reason_id" validate:"required"`
}

// UpdateRejectionReasonResult is returned by UpdateRejectionReason.
type UpdateRejectionReasonResult struct {
	ID      int64  `json:"id"      yaml:"id"`
	Message string `json:"message" yaml:"message"`
	Success bool   `json:"success" yaml:"success"`
}
