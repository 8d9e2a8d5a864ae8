package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// NewCandidatesCommand creates the candidates command group.
func NewCandidatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate"},
		Short:   "Manage candidates",
		Long:    "List, inspect, annotate, merge and delete Greenhouse candidates",
	}

	cmd.AddCommand(newCandidatesListCommand())
	cmd.AddCommand(newCandidatesGetCommand())
	cmd.AddCommand(newCandidatesDeleteCommand())
	cmd.AddCommand(newCandidatesProfileURLCommand())
	cmd.AddCommand(newCandidatesAddNoteCommand())
	cmd.AddCommand(newCandidatesMergeCommand())

	return cmd
}

func newCandidatesListCommand() *cobra.Command {
	var params harvest.ListCandidatesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates",
		Long:  "List candidates, optionally filtered by job, email and dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			candidates, err := client.Candidates().List(context.Background(), &params)
			if err != nil {
				return fmt.Errorf("failed to list candidates: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), candidates, candidateListTable(candidates))
		},
	}

	cmd.Flags().IntVar(&params.PerPage, "per-page", constants.DefaultPerPage, fmt.Sprintf("results per page (max %d)", constants.MaxPerPage))
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().Int64Var(&params.JobID, "job-id", 0, "only candidates who applied to this job")
	cmd.Flags().StringVar(&params.Email, "email", "", "only candidates with this email address")
	cmd.Flags().StringVar(&params.CandidateIDs, "ids", "", "comma separated candidate IDs (max 50)")
	cmd.Flags().StringVar(&params.CreatedAfter, "created-after", "", "ISO-8601 timestamp")
	cmd.Flags().StringVar(&params.UpdatedAfter, "updated-after", "", "ISO-8601 timestamp")

	return cmd
}

func newCandidatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CANDIDATE_ID [CANDIDATE_ID...]",
		Short: "Get candidate details",
		Long:  "Display detailed information about one candidate, or a summary table when several IDs are given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if len(ids) > 1 {
				fetched, err := fetchAll(context.Background(), ids, client.Candidates().Get)
				if err != nil {
					return fmt.Errorf("failed to get candidates: %w", err)
				}

				candidates := make([]harvest.Candidate, 0, len(fetched))
				for _, candidate := range fetched {
					candidates = append(candidates, *candidate)
				}

				return renderOutput(cmd.OutOrStdout(), candidates, candidateListTable(candidates))
			}

			candidate, err := client.Candidates().Get(context.Background(), ids[0])
			if err != nil {
				return fmt.Errorf("failed to get candidate: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), candidate, propertyTable(candidateRows(candidate)))
		},
	}
}

func newCandidatesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CANDIDATE_ID",
		Short: "Delete a candidate",
		Long:  "Delete a candidate and all of their applications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete candidate %d? (y/N): ", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Candidates().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete candidate: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, propertyTable([][]string{{"Message", result.Message}}))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newCandidatesProfileURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile-url CANDIDATE_ID",
		Short: "Print a candidate's profile URL",
		Long:  "Print the Greenhouse web URL of a candidate profile without calling the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), harvest.CandidateProfileURL(id))

			return nil
		},
	}
}

func newCandidatesAddNoteCommand() *cobra.Command {
	var params harvest.AddNoteParams

	cmd := &cobra.Command{
		Use:   "add-note CANDIDATE_ID",
		Short: "Add a note to a candidate",
		Long:  "Add a note to a candidate's activity feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			note, err := client.Candidates().AddNote(context.Background(), id, &params)
			if err != nil {
				return fmt.Errorf("failed to add note: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), note, propertyTable([][]string{
				{"ID", strconv.FormatInt(note.ID, 10)},
				{"Created", formatTime(note.CreatedAt)},
				{"User", note.User.Name},
				{"Visibility", note.Visibility},
				{"Body", truncate(note.Body, constants.DescriptionDisplayLength)},
			}))
		},
	}

	cmd.Flags().Int64Var(&params.UserID, "user-id", 0, "author of the note")
	cmd.Flags().StringVar(&params.Body, "body", "", "note text")
	cmd.Flags().StringVar(&params.Visibility, "visibility", harvest.VisibilityPublic, "admin_only, private or public")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func newCandidatesMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge PRIMARY_ID DUPLICATE_ID",
		Short: "Merge two candidates",
		Long:  "Merge a duplicate candidate into a primary candidate",
		Args:  cobra.ExactArgs(2), //nolint:mnd // primary and duplicate
		RunE: func(cmd *cobra.Command, args []string) error {
			primaryID, err := parseID(args[0])
			if err != nil {
				return err
			}

			duplicateID, err := parseID(args[1])
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			candidate, err := client.Candidates().Merge(context.Background(), &harvest.MergeCandidatesParams{
				PrimaryCandidateID:   primaryID,
				DuplicateCandidateID: duplicateID,
			})
			if err != nil {
				return fmt.Errorf("failed to merge candidates: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), candidate, propertyTable(candidateRows(candidate)))
		},
	}
}

func candidateRows(candidate *harvest.Candidate) [][]string {
	emails := make([]string, 0, len(candidate.EmailAddresses))
	for _, email := range candidate.EmailAddresses {
		emails = append(emails, email.Value)
	}

	return [][]string{
		{"ID", strconv.FormatInt(candidate.ID, 10)},
		{"Name", candidate.FirstName + " " + candidate.LastName},
		{"Company", formatOptionalString(candidate.Company)},
		{"Title", formatOptionalString(candidate.Title)},
		{"Emails", strings.Join(emails, ", ")},
		{"Tags", strings.Join(candidate.Tags, ", ")},
		{"Applications", formatIDs(candidate.ApplicationIDs)},
		{"Private", strconv.FormatBool(candidate.IsPrivate)},
		{"Created", formatTime(candidate.CreatedAt)},
		{"Last Activity", formatTime(candidate.LastActivity)},
		{"Profile", harvest.CandidateProfileURL(candidate.ID)},
	}
}

func candidateListTable(candidates []harvest.Candidate) func(*tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Company", "Title", "Applications", "Last Activity")

		for _, candidate := range candidates {
			_ = table.Append([]string{
				strconv.FormatInt(candidate.ID, 10),
				candidate.FirstName + " " + candidate.LastName,
				formatOptionalString(candidate.Company),
				formatOptionalString(candidate.Title),
				formatIDs(candidate.ApplicationIDs),
				formatTime(candidate.LastActivity),
			})
		}
	}
}
