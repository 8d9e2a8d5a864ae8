package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const (
	customFieldsPath = "/v1/custom_fields"
	// Single field and option endpoints use the singular segment.
	customFieldPath = "/v1/custom_field"
)

// CustomFieldsClient implements harvest.CustomFieldsClient.
type CustomFieldsClient struct {
	httpClient *http.Client
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(httpClient *http.Client) *CustomFieldsClient {
	return &CustomFieldsClient{
		httpClient: httpClient,
	}
}

// List implements harvest.CustomFieldsClient.List.
func (c *CustomFieldsClient) List(ctx context.Context, fieldType string, params *harvest.ListCustomFieldsParams, onBehalfOfUser string) ([]harvest.CustomField, error) {
	err := validate.Var(fieldType, "required,oneof=job candidate application offer opening rejection_question referral_question user_attribute")
	if err != nil {
		return nil, fmt.Errorf("listing custom fields: %w: field type: %w", ErrInvalidParams, err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing custom fields: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		Path:    customFieldsPath + "/" + fieldType,
		Query:   query,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("listing custom fields: %w", err)
	}

	var fields []harvest.CustomField

	err = json.Unmarshal(resp.Body, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing custom fields list response: %w", err)
	}

	return fields, nil
}

// Get implements harvest.CustomFieldsClient.Get.
func (c *CustomFieldsClient) Get(ctx context.Context, id int64, onBehalfOfUser string) (*harvest.CustomField, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		Path:    idPath(customFieldPath, id),
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("getting custom field: %w", err)
	}

	return parseCustomField(resp, "custom field")
}

// Create implements harvest.CustomFieldsClient.Create.
func (c *CustomFieldsClient) Create(ctx context.Context, params *harvest.CreateCustomFieldParams, onBehalfOfUser string) (*harvest.CustomField, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("creating custom field: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    customFieldsPath,
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("creating custom field: %w", err)
	}

	return parseCustomField(resp, "created custom field")
}

// Update implements harvest.CustomFieldsClient.Update.
func (c *CustomFieldsClient) Update(ctx context.Context, id int64, params *harvest.UpdateCustomFieldParams, onBehalfOfUser string) (*harvest.CustomField, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating custom field: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(customFieldsPath, id),
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating custom field: %w", err)
	}

	return parseCustomField(resp, "updated custom field")
}

// Delete implements harvest.CustomFieldsClient.Delete.
func (c *CustomFieldsClient) Delete(ctx context.Context, id int64, onBehalfOfUser string) (*harvest.DeleteCustomFieldResult, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodDelete,
		Path:    idPath(customFieldsPath, id),
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("deleting custom field: %w", err)
	}

	var result harvest.DeleteCustomFieldResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing delete custom field response: %w", err)
	}

	return &result, nil
}

// ListOptions implements harvest.CustomFieldsClient.ListOptions.
func (c *CustomFieldsClient) ListOptions(ctx context.Context, customFieldID int64, optionType string, onBehalfOfUser string) ([]harvest.CustomFieldOption, error) {
	if optionType == "" {
		optionType = constants.CustomFieldOptionsActive
	}

	err := validate.Var(optionType, "oneof=all active inactive")
	if err != nil {
		return nil, fmt.Errorf("listing custom field options: %w: option type: %w", ErrInvalidParams, err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		Path:    idPath(customFieldPath, customFieldID) + "/custom_field_options",
		Query:   url.Values{"type": []string{optionType}},
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("listing custom field options: %w", err)
	}

	var options []harvest.CustomFieldOption

	err = json.Unmarshal(resp.Body, &options)
	if err != nil {
		return nil, fmt.Errorf("parsing custom field options response: %w", err)
	}

	return options, nil
}

// CreateOptions implements harvest.CustomFieldsClient.CreateOptions.
func (c *CustomFieldsClient) CreateOptions(ctx context.Context, customFieldID int64, params *harvest.CreateCustomFieldOptionsParams, onBehalfOfUser string) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("creating custom field options: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(customFieldPath, customFieldID) + "/custom_field_options",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("creating custom field options: %w", err)
	}

	return parseSuccess(resp, "create custom field options response")
}

// UpdateOptions implements harvest.CustomFieldsClient.UpdateOptions.
func (c *CustomFieldsClient) UpdateOptions(ctx context.Context, customFieldID int64, params *harvest.UpdateCustomFieldOptionsParams, onBehalfOfUser string) (*harvest.SuccessResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating custom field options: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(customFieldPath, customFieldID) + "/custom_field_options",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating custom field options: %w", err)
	}

	return parseSuccess(resp, "update custom field options response")
}

// RemoveOptions implements harvest.CustomFieldsClient.RemoveOptions. The
// option IDs are sent as a DELETE body.
func (c *CustomFieldsClient) RemoveOptions(ctx context.Context, customFieldID int64, params *harvest.RemoveCustomFieldOptionsParams, onBehalfOfUser string) (*harvest.MessageResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("removing custom field options: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodDelete,
		Path:    idPath(customFieldPath, customFieldID) + "/custom_field_options",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("removing custom field options: %w", err)
	}

	var result harvest.MessageResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing remove custom field options response: %w", err)
	}

	return &result, nil
}

func parseCustomField(resp *http.Response, what string) (*harvest.CustomField, error) {
	var field harvest.CustomField

	err := json.Unmarshal(resp.Body, &field)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &field, nil
}
