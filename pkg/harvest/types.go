package harvest

import (
	"time"
)

// CustomFields holds custom field values keyed by field name key. Values are
// left loosely typed because their shape depends on the field's value type.
type CustomFields map[string]interface{}

// KeyedCustomField is a custom field value together with its display metadata.
type KeyedCustomField struct {
	Name  string      `json:"name"  yaml:"name"`
	Type  string      `json:"type"  yaml:"type"`
	Value interface{} `json:"value" yaml:"value"`
}

// KeyedCustomFields maps a field name key to its value and metadata.
type KeyedCustomFields map[string]KeyedCustomField

// UserRef is the compact user shape embedded in other resources.
type UserRef struct {
	ID         int64   `json:"id"          yaml:"id"`
	FirstName  string  `json:"first_name"  yaml:"first_name"`
	LastName   string  `json:"last_name"   yaml:"last_name"`
	Name       string  `json:"name"        yaml:"name"`
	EmployeeID *string `json:"employee_id" yaml:"employee_id"`
}

// HiringTeamMember is a user on a job's hiring team.
type HiringTeamMember = UserRef

// NamedRef is an {id, name} pair.
type NamedRef struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Attachment is a file attached to a candidate or application.
type Attachment struct {
	Filename  string    `json:"filename"   yaml:"filename"`
	URL       string    `json:"url"        yaml:"url"`
	Type      string    `json:"type"       yaml:"type"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// AttachmentResult is returned after uploading an attachment.
type AttachmentResult struct {
	Filename    string `json:"filename"     yaml:"filename"`
	URL         string `json:"url"          yaml:"url"`
	Type        string `json:"type"         yaml:"type"`
	ContentType string `json:"content_type" yaml:"content_type"`
}

// ContactValue is a typed contact detail (phone, email, address, website).
type ContactValue struct {
	Value string `json:"value"          yaml:"value"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// UserSelector identifies a user either by ID or by email.
type UserSelector struct {
	ID    int64  `json:"id,omitempty"    yaml:"id,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// CustomFieldValue sets or clears a custom field value on a write request.
type CustomFieldValue struct {
	ID          int64       `json:"id,omitempty"           yaml:"id,omitempty"`
	NameKey     string      `json:"name_key,omitempty"     yaml:"name_key,omitempty"`
	Value       interface{} `json:"value,omitempty"        yaml:"value,omitempty"`
	MinValue    *float64    `json:"min_value,omitempty"    yaml:"min_value,omitempty"`
	MaxValue    *float64    `json:"max_value,omitempty"    yaml:"max_value,omitempty"`
	Unit        string      `json:"unit,omitempty"         yaml:"unit,omitempty"`
	DeleteValue *bool       `json:"delete_value,omitempty" yaml:"delete_value,omitempty"`
}

// Pagination holds the paging parameters shared by list endpoints.
// Callers page manually by incrementing Page.
// The per_page bound mirrors constants.MaxPerPage.
type Pagination struct {
	PerPage int `url:"per_page,omitempty" validate:"omitempty,min=1,max=500"`
	Page    int `url:"page,omitempty"     validate:"omitempty,min=1"`
}

// MessageResult is the body of delete-style responses.
type MessageResult struct {
	Message string `json:"message" yaml:"message"`
}

// SuccessResult is the body of responses that only report success.
type SuccessResult struct {
	Success bool   `json:"success"           yaml:"success"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Bool returns a pointer to b, for optional boolean parameters.
func Bool(b bool) *bool {
	return &b
}

// Float64 returns a pointer to f, for optional numeric parameters.
func Float64(f float64) *float64 {
	return &f
}

// String returns a pointer to s, for optional nullable string parameters.
func String(s string) *string {
	return &s
}
