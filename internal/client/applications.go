package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const applicationsPath = "/v1/applications"

// ApplicationsClient implements harvest.ApplicationsClient.
type ApplicationsClient struct {
	httpClient *http.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(httpClient *http.Client) *ApplicationsClient {
	return &ApplicationsClient{
		httpClient: httpClient,
	}
}

// List implements harvest.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, params *harvest.ListApplicationsParams, onBehalfOfUser string) ([]harvest.Application, error) {
	err := validateOptional(params)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		Path:    applicationsPath,
		Query:   query,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var applications []harvest.Application

	err = json.Unmarshal(resp.Body, &applications)
	if err != nil {
		return nil, fmt.Errorf("parsing applications list response: %w", err)
	}

	return applications, nil
}

// Get implements harvest.ApplicationsClient.Get.
func (c *ApplicationsClient) Get(ctx context.Context, id int64, onBehalfOfUser string) (*harvest.Application, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodGet,
		Path:    idPath(applicationsPath, id),
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	return parseApplication(resp, "application")
}

// Delete implements harvest.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, id int64, onBehalfOfUser string) (*harvest.MessageResult, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodDelete,
		Path:    idPath(applicationsPath, id),
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("deleting application: %w", err)
	}

	var result harvest.MessageResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing delete application response: %w", err)
	}

	return &result, nil
}

// Add implements harvest.ApplicationsClient.Add.
func (c *ApplicationsClient) Add(ctx context.Context, candidateID int64, params *harvest.AddApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(candidatesPath, candidateID) + "/applications",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("adding application: %w", err)
	}

	return parseApplication(resp, "added application")
}

// Update implements harvest.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, id int64, params *harvest.UpdateApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(applicationsPath, id),
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	return parseApplication(resp, "updated application")
}

// Advance implements harvest.ApplicationsClient.Advance.
func (c *ApplicationsClient) Advance(ctx context.Context, id int64, params *harvest.AdvanceApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("advancing application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/advance",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("advancing application: %w", err)
	}

	return parseApplication(resp, "advanced application")
}

// Move implements harvest.ApplicationsClient.Move.
func (c *ApplicationsClient) Move(ctx context.Context, id int64, params *harvest.MoveApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("moving application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/move",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("moving application: %w", err)
	}

	return parseApplication(resp, "moved application")
}

// Transfer implements harvest.ApplicationsClient.Transfer.
func (c *ApplicationsClient) Transfer(ctx context.Context, id int64, params *harvest.TransferApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("transferring application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/transfer_to_job",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("transferring application: %w", err)
	}

	return parseApplication(resp, "transferred application")
}

// ConvertProspect implements harvest.ApplicationsClient.ConvertProspect.
func (c *ApplicationsClient) ConvertProspect(ctx context.Context, id int64, params *harvest.ConvertProspectParams, onBehalfOfUser string) (*harvest.ConvertProspectResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("converting prospect: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(applicationsPath, id) + "/convert_prospect",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("converting prospect: %w", err)
	}

	var result harvest.ConvertProspectResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing convert prospect response: %w", err)
	}

	return &result, nil
}

// AddAttachment implements harvest.ApplicationsClient.AddAttachment.
func (c *ApplicationsClient) AddAttachment(ctx context.Context, id int64, params *harvest.AddApplicationAttachmentParams, onBehalfOfUser string) (*harvest.AttachmentResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding application attachment: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/attachments",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("adding application attachment: %w", err)
	}

	var result harvest.AttachmentResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing attachment response: %w", err)
	}

	return &result, nil
}

// Hire implements harvest.ApplicationsClient.Hire. Nil params send an empty body.
func (c *ApplicationsClient) Hire(ctx context.Context, id int64, params *harvest.HireApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	if params == nil {
		params = &harvest.HireApplicationParams{}
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/hire",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("hiring application: %w", err)
	}

	return parseApplication(resp, "hired application")
}

// Reject implements harvest.ApplicationsClient.Reject. Nil params send an empty body.
func (c *ApplicationsClient) Reject(ctx context.Context, id int64, params *harvest.RejectApplicationParams, onBehalfOfUser string) (*harvest.Application, error) {
	if params == nil {
		params = &harvest.RejectApplicationParams{}
	}

	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("rejecting application: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/reject",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("rejecting application: %w", err)
	}

	return parseApplication(resp, "rejected application")
}

// UpdateRejectionReason implements harvest.ApplicationsClient.UpdateRejectionReason.
// Harvest serves it as PATCH on the reject endpoint.
func (c *ApplicationsClient) UpdateRejectionReason(ctx context.Context, id int64, params *harvest.UpdateRejectionReasonParams, onBehalfOfUser string) (*harvest.UpdateRejectionReasonResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating rejection reason: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPatch,
		Path:    idPath(applicationsPath, id) + "/reject",
		Body:    params,
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("updating rejection reason: %w", err)
	}

	var result harvest.UpdateRejectionReasonResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing rejection reason response: %w", err)
	}

	return &result, nil
}

// Unreject implements harvest.ApplicationsClient.Unreject. It always sends {}.
func (c *ApplicationsClient) Unreject(ctx context.Context, id int64, onBehalfOfUser string) (*harvest.Application, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    idPath(applicationsPath, id) + "/unreject",
		Body:    struct{}{},
		Headers: onBehalfOf(onBehalfOfUser),
	})
	if err != nil {
		return nil, fmt.Errorf("unrejecting application: %w", err)
	}

	return parseApplication(resp, "unrejected application")
}

func parseApplication(resp *http.Response, what string) (*harvest.Application, error) {
	var application harvest.Application

	err := json.Unmarshal(resp.Body, &application)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &application, nil
}
