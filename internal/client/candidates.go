package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/harvest-client/internal/http"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

const candidatesPath = "/v1/candidates"

// CandidatesClient implements harvest.CandidatesClient.
type CandidatesClient struct {
	httpClient *http.Client
}

// NewCandidatesClient creates a new candidates client.
func NewCandidatesClient(httpClient *http.Client) *CandidatesClient {
	return &CandidatesClient{
		httpClient: httpClient,
	}
}

// List implements harvest.CandidatesClient.List.
func (c *CandidatesClient) List(ctx context.Context, params *harvest.ListCandidatesParams) ([]harvest.Candidate, error) {
	err := validateOptional(params)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, candidatesPath, query)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	var candidates []harvest.Candidate

	err = json.Unmarshal(resp.Body, &candidates)
	if err != nil {
		return nil, fmt.Errorf("parsing candidates list response: %w", err)
	}

	return candidates, nil
}

// Get implements harvest.CandidatesClient.Get.
func (c *CandidatesClient) Get(ctx context.Context, id int64) (*harvest.Candidate, error) {
	resp, err := c.httpClient.Get(ctx, idPath(candidatesPath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting candidate: %w", err)
	}

	return parseCandidate(resp, "candidate")
}

// Delete implements harvest.CandidatesClient.Delete.
func (c *CandidatesClient) Delete(ctx context.Context, id int64) (*harvest.MessageResult, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(candidatesPath, id))
	if err != nil {
		return nil, fmt.Errorf("deleting candidate: %w", err)
	}

	var result harvest.MessageResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing delete candidate response: %w", err)
	}

	return &result, nil
}

// Update implements harvest.CandidatesClient.Update.
func (c *CandidatesClient) Update(ctx context.Context, id int64, params *harvest.UpdateCandidateParams) (*harvest.Candidate, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating candidate: %w", err)
	}

	resp, err := c.httpClient.Patch(ctx, idPath(candidatesPath, id), params)
	if err != nil {
		return nil, fmt.Errorf("updating candidate: %w", err)
	}

	return parseCandidate(resp, "updated candidate")
}

// Add implements harvest.CandidatesClient.Add.
func (c *CandidatesClient) Add(ctx context.Context, params *harvest.AddCandidateParams) (*harvest.Candidate, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding candidate: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, candidatesPath, params)
	if err != nil {
		return nil, fmt.Errorf("adding candidate: %w", err)
	}

	return parseCandidate(resp, "added candidate")
}

// AddNote implements harvest.CandidatesClient.AddNote.
func (c *CandidatesClient) AddNote(ctx context.Context, candidateID int64, params *harvest.AddNoteParams) (*harvest.Note, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding note: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, idPath(candidatesPath, candidateID)+"/activity_feed/notes", params)
	if err != nil {
		return nil, fmt.Errorf("adding note: %w", err)
	}

	var note harvest.Note

	err = json.Unmarshal(resp.Body, &note)
	if err != nil {
		return nil, fmt.Errorf("parsing note: %w", err)
	}

	return &note, nil
}

// AddEmailNote implements harvest.CandidatesClient.AddEmailNote.
func (c *CandidatesClient) AddEmailNote(ctx context.Context, candidateID int64, params *harvest.AddEmailNoteParams) (*harvest.EmailNote, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding email note: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, idPath(candidatesPath, candidateID)+"/activity_feed/emails", params)
	if err != nil {
		return nil, fmt.Errorf("adding email note: %w", err)
	}

	var note harvest.EmailNote

	err = json.Unmarshal(resp.Body, &note)
	if err != nil {
		return nil, fmt.Errorf("parsing email note: %w", err)
	}

	return &note, nil
}

// AddEducation implements harvest.CandidatesClient.AddEducation.
func (c *CandidatesClient) AddEducation(ctx context.Context, candidateID int64, params *harvest.EducationInput) (*harvest.Education, error) {
	if params == nil {
		params = &harvest.EducationInput{}
	}

	resp, err := c.httpClient.Post(ctx, idPath(candidatesPath, candidateID)+"/educations", params)
	if err != nil {
		return nil, fmt.Errorf("adding education: %w", err)
	}

	var education harvest.Education

	err = json.Unmarshal(resp.Body, &education)
	if err != nil {
		return nil, fmt.Errorf("parsing education: %w", err)
	}

	return &education, nil
}

// DeleteEducation implements harvest.CandidatesClient.DeleteEducation.
func (c *CandidatesClient) DeleteEducation(ctx context.Context, candidateID, educationID int64) (*harvest.SuccessResult, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(idPath(candidatesPath, candidateID)+"/educations", educationID))
	if err != nil {
		return nil, fmt.Errorf("deleting education: %w", err)
	}

	return parseSuccess(resp, "delete education response")
}

// AddEmployment implements harvest.CandidatesClient.AddEmployment.
func (c *CandidatesClient) AddEmployment(ctx context.Context, candidateID int64, params *harvest.EmploymentInput) (*harvest.Employment, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding employment: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, idPath(candidatesPath, candidateID)+"/employments", params)
	if err != nil {
		return nil, fmt.Errorf("adding employment: %w", err)
	}

	var employment harvest.Employment

	err = json.Unmarshal(resp.Body, &employment)
	if err != nil {
		return nil, fmt.Errorf("parsing employment: %w", err)
	}

	return &employment, nil
}

// DeleteEmployment implements harvest.CandidatesClient.DeleteEmployment.
func (c *CandidatesClient) DeleteEmployment(ctx context.Context, candidateID, employmentID int64) (*harvest.SuccessResult, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(idPath(candidatesPath, candidateID)+"/employments", employmentID))
	if err != nil {
		return nil, fmt.Errorf("deleting employment: %w", err)
	}

	return parseSuccess(resp, "delete employment response")
}

// AddAttachment implements harvest.CandidatesClient.AddAttachment.
func (c *CandidatesClient) AddAttachment(ctx context.Context, candidateID int64, params *harvest.AddCandidateAttachmentParams) (*harvest.AttachmentResult, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("adding candidate attachment: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, idPath(candidatesPath, candidateID)+"/attachments", params)
	if err != nil {
		return nil, fmt.Errorf("adding candidate attachment: %w", err)
	}

	var result harvest.AttachmentResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing attachment response: %w", err)
	}

	return &result, nil
}

// Anonymize implements harvest.CandidatesClient.Anonymize. The fields to
// erase travel in the query string, not the body.
func (c *CandidatesClient) Anonymize(ctx context.Context, id int64, params *harvest.AnonymizeCandidateParams) (*harvest.Candidate, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("anonymizing candidate: %w", err)
	}

	query, err := encodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("anonymizing candidate: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: nethttp.MethodPut,
		Path:   idPath(candidatesPath, id) + "/anonymize",
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("anonymizing candidate: %w", err)
	}

	return parseCandidate(resp, "anonymized candidate")
}

// Merge implements harvest.CandidatesClient.Merge.
func (c *CandidatesClient) Merge(ctx context.Context, params *harvest.MergeCandidatesParams) (*harvest.Candidate, error) {
	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("merging candidates: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, candidatesPath+"/merge", params)
	if err != nil {
		return nil, fmt.Errorf("merging candidates: %w", err)
	}

	return parseCandidate(resp, "merged candidate")
}

func parseCandidate(resp *http.Response, what string) (*harvest.Candidate, error) {
	var candidate harvest.Candidate

	err := json.Unmarshal(resp.Body, &candidate)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &candidate, nil
}

func parseSuccess(resp *http.Response, what string) (*harvest.SuccessResult, error) {
	var result harvest.SuccessResult

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &result, nil
}
