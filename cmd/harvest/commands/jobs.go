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

// NewJobsCommand creates the jobs command group.
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Inspect jobs",
		Long:    "List jobs and view their details and hiring teams",
	}

	cmd.AddCommand(newJobsListCommand())
	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsHiringTeamCommand())

	return cmd
}

func newJobsListCommand() *cobra.Command {
	var params harvest.ListJobsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Long:  "List jobs, optionally filtered by status, department and office",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			jobs, err := client.Jobs().List(context.Background(), &params)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), jobs, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Status", "Requisition", "Departments", "Offices", "Openings")

				for _, job := range jobs {
					_ = table.Append([]string{
						strconv.FormatInt(job.ID, 10),
						job.Name,
						job.Status,
						formatOptionalString(job.RequisitionID),
						departmentNames(job.Departments),
						officeNames(job.Offices),
						strconv.Itoa(len(job.Openings)),
					})
				}
			})
		},
	}

	cmd.Flags().IntVar(&params.PerPage, "per-page", constants.DefaultPerPage, fmt.Sprintf("results per page (max %d)", constants.MaxPerPage))
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().StringVar(&params.Status, "status", "", "filter by status (open, closed, draft)")
	cmd.Flags().Int64Var(&params.DepartmentID, "department-id", 0, "only jobs in this department")
	cmd.Flags().Int64Var(&params.OfficeID, "office-id", 0, "only jobs in this office")
	cmd.Flags().StringVar(&params.RequisitionID, "requisition-id", "", "only the job with this requisition ID")
	cmd.Flags().StringVar(&params.UpdatedAfter, "updated-after", "", "ISO-8601 timestamp")

	return cmd
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get JOB_ID",
		Short: "Get job details",
		Long:  "Display detailed information about a specific job",
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

			job, err := client.Jobs().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get job: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), job, propertyTable([][]string{
				{"ID", strconv.FormatInt(job.ID, 10)},
				{"Name", job.Name},
				{"Status", job.Status},
				{"Requisition", formatOptionalString(job.RequisitionID)},
				{"Confidential", strconv.FormatBool(job.Confidential)},
				{"Departments", departmentNames(job.Departments)},
				{"Offices", officeNames(job.Offices)},
				{"Hiring Managers", memberNames(job.HiringTeam.HiringManagers)},
				{"Openings", strconv.Itoa(len(job.Openings))},
				{"Created", formatTime(job.CreatedAt)},
				{"Opened", formatOptionalTime(job.OpenedAt)},
				{"Closed", formatOptionalTime(job.ClosedAt)},
			}))
		},
	}
}

func newJobsHiringTeamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hiring-team JOB_ID",
		Short: "Show a job's hiring team",
		Long:  "List the hiring managers, recruiters, coordinators and sourcers of a job",
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

			team, err := client.Jobs().GetHiringTeam(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get hiring team: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), team, func(table *tablewriter.Table) {
				table.Header("Role", "User ID", "Active", "Responsible")

				appendAssignments(table, "hiring_manager", team.HiringManagers)
				appendAssignments(table, "recruiter", team.Recruiters)
				appendAssignments(table, "coordinator", team.Coordinators)
				appendAssignments(table, "sourcer", team.Sourcers)
			})
		},
	}
}

func appendAssignments(table *tablewriter.Table, role string, assignments []harvest.HiringTeamAssignment) {
	for _, assignment := range assignments {
		responsible := constants.NotAvailable
		if assignment.Responsible != nil {
			responsible = strconv.FormatBool(*assignment.Responsible)
		}

		_ = table.Append([]string{
			role,
			strconv.FormatInt(assignment.UserID, 10),
			strconv.FormatBool(assignment.Active),
			responsible,
		})
	}
}

func departmentNames(departments []harvest.Department) string {
	names := make([]string, 0, len(departments))
	for _, department := range departments {
		names = append(names, department.Name)
	}

	return strings.Join(names, ", ")
}

func officeNames(offices []harvest.Office) string {
	names := make([]string, 0, len(offices))
	for _, office := range offices {
		names = append(names, office.Name)
	}

	return strings.Join(names, ", ")
}

func memberNames(members []harvest.HiringTeamMember) string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}

	return strings.Join(names, ", ")
}
