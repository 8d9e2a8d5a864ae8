package commands

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// NewApplicationsCommand creates the applications command group.
func NewApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"application", "apps"},
		Short:   "Manage applications",
		Long:    "List, inspect, advance, reject and delete Greenhouse applications",
	}

	cmd.AddCommand(newApplicationsListCommand())
	cmd.AddCommand(newApplicationsGetCommand())
	cmd.AddCommand(newApplicationsDeleteCommand())
	cmd.AddCommand(newApplicationsRejectCommand())
	cmd.AddCommand(newApplicationsUnrejectCommand())
	cmd.AddCommand(newApplicationsAdvanceCommand())

	return cmd
}

func newApplicationsListCommand() *cobra.Command {
	var params harvest.ListApplicationsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long:  "List applications, optionally filtered by job, status and dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			applications, err := client.Applications().List(context.Background(), &params, onBehalfOf())
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), applications, func(table *tablewriter.Table) {
				table.Header("ID", "Candidate", "Status", "Stage", "Jobs", "Applied", "Last Activity")

				for _, application := range applications {
					_ = table.Append([]string{
						strconv.FormatInt(application.ID, 10),
						strconv.FormatInt(application.CandidateID, 10),
						application.Status,
						stageName(application.CurrentStage),
						jobNames(application.Jobs),
						formatTime(application.AppliedAt),
						formatTime(application.LastActivityAt),
					})
				}
			})
		},
	}

	cmd.Flags().IntVar(&params.PerPage, "per-page", constants.DefaultPerPage, fmt.Sprintf("results per page (max %d)", constants.MaxPerPage))
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().Int64Var(&params.JobID, "job-id", 0, "only applications for this job")
	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status (active, converted, hired, rejected)")
	cmd.Flags().StringVar(&params.CreatedBefore, "created-before", "", "ISO-8601 timestamp")
	cmd.Flags().StringVar(&params.CreatedAfter, "created-after", "", "ISO-8601 timestamp")
	cmd.Flags().StringVar(&params.LastActivityAfter, "last-activity-after", "", "ISO-8601 timestamp")

	return cmd
}

func newApplicationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APPLICATION_ID",
		Short: "Get application details",
		Long:  "Display detailed information about a specific application",
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

			application, err := client.Applications().Get(context.Background(), id, onBehalfOf())
			if err != nil {
				return fmt.Errorf("failed to get application: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), application, propertyTable(applicationRows(application)))
		},
	}
}

func newApplicationsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete APPLICATION_ID",
		Short: "Delete an application",
		Long:  "Delete an application. Hired applications cannot be deleted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			actor, err := requireOnBehalfOf()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete application %d? (y/N): ", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Applications().Delete(context.Background(), id, actor)
			if err != nil {
				return fmt.Errorf("failed to delete application: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, propertyTable([][]string{{"Message", result.Message}}))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newApplicationsRejectCommand() *cobra.Command {
	var (
		params          harvest.RejectApplicationParams
		emailTemplateID int64
		sendEmailAt     string
	)

	cmd := &cobra.Command{
		Use:   "reject APPLICATION_ID",
		Short: "Reject an application",
		Long:  "Reject an application with an optional reason, notes and rejection email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			actor, err := requireOnBehalfOf()
			if err != nil {
				return err
			}

			if emailTemplateID != 0 {
				params.RejectionEmail = &harvest.RejectionEmail{
					EmailTemplateID: emailTemplateID,
					SendEmailAt:     sendEmailAt,
				}
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			application, err := client.Applications().Reject(context.Background(), id, &params, actor)
			if err != nil {
				return fmt.Errorf("failed to reject application: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), application, propertyTable(applicationRows(application)))
		},
	}

	cmd.Flags().Int64Var(&params.RejectionReasonID, "reason-id", 0, "rejection reason ID")
	cmd.Flags().StringVar(&params.Notes, "notes", "", "rejection notes")
	cmd.Flags().Int64Var(&emailTemplateID, "email-template-id", 0, "send a rejection email with this template")
	cmd.Flags().StringVar(&sendEmailAt, "send-email-at", "", "ISO-8601 time to send the rejection email")

	return cmd
}

func newApplicationsUnrejectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unreject APPLICATION_ID",
		Short: "Unreject an application",
		Long:  "Return a rejected application to the active state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			actor, err := requireOnBehalfOf()
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			application, err := client.Applications().Unreject(context.Background(), id, actor)
			if err != nil {
				return fmt.Errorf("failed to unreject application: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), application, propertyTable(applicationRows(application)))
		},
	}
}

func newApplicationsAdvanceCommand() *cobra.Command {
	var fromStageID int64

	cmd := &cobra.Command{
		Use:   "advance APPLICATION_ID",
		Short: "Advance an application",
		Long:  "Move an application to the next stage of its interview plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			actor, err := requireOnBehalfOf()
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			application, err := client.Applications().Advance(context.Background(), id,
				&harvest.AdvanceApplicationParams{FromStageID: fromStageID}, actor)
			if err != nil {
				return fmt.Errorf("failed to advance application: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), application, propertyTable(applicationRows(application)))
		},
	}

	cmd.Flags().Int64Var(&fromStageID, "from-stage-id", 0, "stage the application is currently in")
	_ = cmd.MarkFlagRequired("from-stage-id")

	return cmd
}

func applicationRows(application *harvest.Application) [][]string {
	rows := [][]string{
		{"ID", strconv.FormatInt(application.ID, 10)},
		{"Candidate ID", strconv.FormatInt(application.CandidateID, 10)},
		{"Prospect", strconv.FormatBool(application.Prospect)},
		{"Status", application.Status},
		{"Current Stage", stageName(application.CurrentStage)},
		{"Jobs", jobNames(application.Jobs)},
		{"Applied", formatTime(application.AppliedAt)},
		{"Last Activity", formatTime(application.LastActivityAt)},
		{"Rejected", formatOptionalTime(application.RejectedAt)},
	}

	if application.RejectionReason != nil {
		rows = append(rows, []string{"Rejection Reason", application.RejectionReason.Name})
	}

	if application.Source != nil {
		rows = append(rows, []string{"Source", application.Source.PublicName})
	}

	return rows
}

func stageName(stage *harvest.NamedRef) string {
	if stage == nil {
		return constants.NotAvailable
	}

	return stage.Name
}

func jobNames(jobs []harvest.NamedRef) string {
	names := make([]string, 0, len(jobs))
	for _, job := range jobs {
		names = append(names, job.Name)
	}

	return strings.Join(names, ", ")
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.TrimSpace(response)

	return response == "y" || response == "Y"
}
