package harvest

// Custom field types, the {fieldType} segment of List.
const (
	FieldTypeJob               = "job"
	FieldTypeCandidate         = "candidate"
	FieldTypeApplication       = "application"
	FieldTypeOffer             = "offer"
	FieldTypeOpening           = "opening"
	FieldTypeRejectionQuestion = "rejection_question"
	FieldTypeReferralQuestion  = "referral_question"
	FieldTypeUserAttribute     = "user_attribute"
)

// Custom field option filters for ListOptions.
const (
	OptionsAll      = "all"
	OptionsActive   = "active"
	OptionsInactive = "inactive"
)

// CustomFieldTypes lists every accepted field type in display order.
var CustomFieldTypes = []string{
	FieldTypeJob,
	FieldTypeCandidate,
	FieldTypeApplication,
	FieldTypeOffer,
	FieldTypeOpening,
	FieldTypeRejectionQuestion,
	FieldTypeReferralQuestion,
	FieldTypeUserAttribute,
}

// CustomFieldOption is one choice of a single or multi select field.
type CustomFieldOption struct {
	ID         int64   `json:"id"          yaml:"id"`
	Name       string  `json:"name"        yaml:"name"`
	Priority   int     `json:"priority"    yaml:"priority"`
	ExternalID *string `json:"external_id" yaml:"external_id"`
}

// CustomField describes a custom field definition.
type CustomField struct {
	ID                   int64               `json:"id"                      yaml:"id"`
	Name                 string              `json:"name"                    yaml:"name"`
	Active               bool                `json:"active"                  yaml:"active"`
	FieldType            string              `json:"field_type"              yaml:"field_type"`
	Priority             int                 `json:"priority"                yaml:"priority"`
	ValueType            string              `json:"value_type"              yaml:"value_type"`
	Private              bool                `json:"private"                 yaml:"private"`
	Required             bool                `json:"required"                yaml:"required"`
	RequireApproval      bool                `json:"require_approval"        yaml:"require_approval"`
	TriggerNewVersion    bool                `json:"trigger_new_version"     yaml:"trigger_new_version"`
	NameKey              string              `json:"name_key"                yaml:"name_key"`
	Description          string              `json:"description"             yaml:"description"`
	ExposeInJobBoardAPI  bool                `json:"expose_in_job_board_api" yaml:"expose_in_job_board_api"`
	APIOnly              bool                `json:"api_only"                yaml:"api_only"`
	Offices              []Office            `json:"offices"                 yaml:"offices"`
	Departments          []Department        `json:"departments"             yaml:"departments"`
	TemplateTokenString  string              `json:"template_token_string"   yaml:"template_token_string"`
	CustomFieldOptions   []CustomFieldOption `json:"custom_field_options"    yaml:"custom_field_options"`
}

// ListCustomFieldsParams filters GET /v1/custom_fields/{fieldType}.
type ListCustomFieldsParams struct {
	IncludeInactive *bool `url:"include_inactive,omitempty"`
}

// CustomFieldOptionInput is a new option sent on create.
type CustomFieldOptionInput struct {
	Name       string `json:"name"                  validate:"required"`
	Priority   int    `json:"priority"`
	ExternalID string `json:"external_id,omitempty"`
}

// CreateCustomFieldParams is the body of POST /v1/custom_fields.
type CreateCustomFieldParams struct {
	Name                string                   `json:"name"                              validate:"required"`
	Description         string                   `json:"description,omitempty"`
	FieldType           string                   `json:"field_type"                        validate:"required,oneof=job candidate application offer opening rejection_question referral_question user_attribute"`
	ValueType           string                   `json:"value_type"                        validate:"required,oneof=short_text long_text yes_no single_select multi_select currency currency_range number number_range date url user"`
	Private             *bool                    `json:"private,omitempty"`
	Required            *bool                    `json:"required,omitempty"`
	RequireApproval     *bool                    `json:"require_approval,omitempty"`
	TriggerNewVersion   *bool                    `json:"trigger_new_version,omitempty"`
	ExposeInJobBoardAPI *bool                    `json:"expose_in_job_board_api,omitempty"`
	APIOnly             *bool                    `json:"api_only,omitempty"`
	OfficeIDs           []int64                  `json:"office_ids,omitempty"`
	DepartmentIDs       []int64                  `json:"department_ids,omitempty"`
	CustomFieldOptions  []CustomFieldOptionInput `json:"custom_field_options,omitempty"    validate:"omitempty,dive"`
	GenerateEmailToken  *bool                    `json:"generate_email_token,omitempty"`
}

// UpdateCustomFieldParams is the body of PATCH /v1/custom_fields/{id}.
type UpdateCustomFieldParams struct {
	Name                string                   `json:"name,omitempty"`
	Description         string                   `json:"description,omitempty"`
	Private             *bool                    `json:"private,omitempty"`
	Required            *bool                    `json:"required,omitempty"`
	RequireApproval     *bool                    `json:"require_approval,omitempty"`
	TriggerNewVersion   *bool                    `json:"trigger_new_version,omitempty"`
	ExposeInJobBoardAPI *bool                    `json:"expose_in_job_board_api,omitempty"`
	APIOnly             *bool                    `json:"api_only,omitempty"`
	OfficeIDs           []int64                  `json:"office_ids,omitempty"`
	DepartmentIDs       []int64                  `json:"department_ids,omitempty"`
	CustomFieldOptions  []CustomFieldOptionInput `json:"custom_field_options,omitempty"    validate:"omitempty,dive"`
	GenerateEmailToken  *bool                    `json:"generate_email_token,omitempty"`
	TemplateTokenString string                   `json:"template_token_string,omitempty"`
}

// CreateCustomFieldOptionsParams is the body of POST /v1/custom_field/{id}/custom_field_options.
type CreateCustomFieldOptionsParams struct {
	Options []CustomFieldOptionInput `json:"options" validate:"required,min=1,dive"`
}

// CustomFieldOptionUpdate changes an existing option. A nil ExternalID
// leaves it untouched.
type CustomFieldOptionUpdate struct {
	ID         int64   `json:"id"                    validate:"required"`
	Name       string  `json:"name,omitempty"`
	Priority   *int    `json:"priority,omitempty"`
	ExternalID *string `json:"external_id,omitempty"`
}

// UpdateCustomFieldOptionsParams is the body of PATCH /v1/custom_field/{id}/custom_field_options.
type UpdateCustomFieldOptionsParams struct {
	Options []CustomFieldOptionUpdate `json:"options" validate:"required,min=1,dive"`
}

// RemoveCustomFieldOptionsParams is the body of DELETE /v1/custom_field/{id}/custom_field_options.
type RemoveCustomFieldOptionsParams struct {
	OptionIDs []int64 `json:"option_ids" validate:"required,min=1"`
}

// DeleteCustomFieldResult is returned by Delete; Harvest reports success as text.
type DeleteCustomFieldResult struct {
	Success string `json:"success" yaml:"success"`
}
