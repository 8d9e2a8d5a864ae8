package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// NewJobPostsCommand creates the job-posts command group.
func NewJobPostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job-posts",
		Aliases: []string{"job-post", "posts"},
		Short:   "Manage job posts",
		Long:    "List job posts, view them and take them live or offline",
	}

	cmd.AddCommand(newJobPostsListCommand())
	cmd.AddCommand(newJobPostsGetCommand())
	cmd.AddCommand(newJobPostsForJobCommand())
	cmd.AddCommand(newJobPostsUpdateStatusCommand())

	return cmd
}

func newJobPostsListCommand() *cobra.Command {
	var (
		params harvest.ListJobPostsParams
		live   bool
		active bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job posts",
		Long:  "List job posts, optionally only live or active ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("live") {
				params.Live = harvest.Bool(live)
			}

			if cmd.Flags().Changed("active") {
				params.Active = harvest.Bool(active)
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			posts, err := client.JobPosts().List(context.Background(), &params)
			if err != nil {
				return fmt.Errorf("failed to list job posts: %w", err)
			}

			return renderJobPosts(cmd, posts)
		},
	}

	cmd.Flags().IntVar(&params.PerPage, "per-page", constants.DefaultPerPage, fmt.Sprintf("results per page (max %d)", constants.MaxPerPage))
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().BoolVar(&live, "live", false, "only live (or, with --live=false, offline) posts")
	cmd.Flags().BoolVar(&active, "active", false, "only active (or, with --active=false, inactive) posts")

	return cmd
}

func newJobPostsGetCommand() *cobra.Command {
	var fullContent bool

	cmd := &cobra.Command{
		Use:   "get JOB_POST_ID",
		Short: "Get job post details",
		Long:  "Display detailed information about a specific job post",
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

			var params *harvest.GetJobPostParams
			if fullContent {
				params = &harvest.GetJobPostParams{FullContent: harvest.Bool(true)}
			}

			post, err := client.JobPosts().Get(context.Background(), id, params)
			if err != nil {
				return fmt.Errorf("failed to get job post: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), post, propertyTable(jobPostRows(post)))
		},
	}

	cmd.Flags().BoolVar(&fullContent, "full-content", false, "include the full post content")

	return cmd
}

func newJobPostsForJobCommand() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "for-job JOB_ID",
		Short: "List the posts of a job",
		Long:  "List the job posts belonging to a specific job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			params := &harvest.ListJobPostsForJobParams{}
			if cmd.Flags().Changed("active") {
				params.Active = harvest.Bool(active)
			}

			posts, err := client.JobPosts().ListForJob(context.Background(), jobID, params)
			if err != nil {
				return fmt.Errorf("failed to list job posts: %w", err)
			}

			return renderJobPosts(cmd, posts)
		},
	}

	cmd.Flags().BoolVar(&active, "active", false, "only active (or, with --active=false, inactive) posts")

	return cmd
}

func newJobPostsUpdateStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "update-status JOB_POST_ID STATUS",
		Short:     "Take a job post live or offline",
		Long:      "Set the status of a job post to live or offline",
		Args:      cobra.ExactArgs(2), //nolint:mnd // id and status
		ValidArgs: []string{harvest.JobPostStatusLive, harvest.JobPostStatusOffline},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			actor, err := requireOnBehalfOfID()
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.JobPosts().UpdateStatus(context.Background(), id,
				&harvest.UpdateJobPostStatusParams{Status: args[1]}, actor)
			if err != nil {
				return fmt.Errorf("failed to update job post status: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, propertyTable([][]string{
				{"Job Post", strconv.FormatInt(id, 10)},
				{"Status", args[1]},
				{"Success", strconv.FormatBool(result.Success)},
			}))
		},
	}
}

func renderJobPosts(cmd *cobra.Command, posts []harvest.JobPost) error {
	return renderOutput(cmd.OutOrStdout(), posts, func(table *tablewriter.Table) {
		table.Header("ID", "Title", "Job ID", "Location", "Live", "Active", "Updated")

		for _, post := range posts {
			_ = table.Append([]string{
				strconv.FormatInt(post.ID, 10),
				post.Title,
				strconv.FormatInt(post.JobID, 10),
				locationName(post.Location),
				strconv.FormatBool(post.Live),
				strconv.FormatBool(post.Active),
				formatTime(post.UpdatedAt),
			})
		}
	})
}

func jobPostRows(post *harvest.JobPost) [][]string {
	return [][]string{
		{"ID", strconv.FormatInt(post.ID, 10)},
		{"Title", post.Title},
		{"Job ID", strconv.FormatInt(post.JobID, 10)},
		{"Location", locationName(post.Location)},
		{"Live", strconv.FormatBool(post.Live)},
		{"Active", strconv.FormatBool(post.Active)},
		{"Internal", strconv.FormatBool(post.Internal)},
		{"External", strconv.FormatBool(post.External)},
		{"First Published", formatOptionalTime(post.FirstPublishedAt)},
		{"Questions", strconv.Itoa(len(post.Questions))},
		{"Content", truncate(post.Content, constants.DescriptionDisplayLength)},
	}
}

func locationName(location *harvest.JobPostLocation) string {
	if location == nil {
		return constants.NotAvailable
	}

	return location.Name
}
