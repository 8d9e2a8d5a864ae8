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

// NewCustomFieldsCommand creates the custom-fields command group.
func NewCustomFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "custom-fields",
		Aliases: []string{"custom-field", "cf"},
		Short:   "Inspect custom fields",
		Long:    "List custom field definitions and their options",
	}

	cmd.AddCommand(newCustomFieldsListCommand())
	cmd.AddCommand(newCustomFieldsGetCommand())
	cmd.AddCommand(newCustomFieldsOptionsCommand())

	return cmd
}

func newCustomFieldsListCommand() *cobra.Command {
	var includeInactive bool

	cmd := &cobra.Command{
		Use:       "list FIELD_TYPE",
		Short:     "List custom fields of a type",
		Long:      "List custom fields of one type: " + strings.Join(harvest.CustomFieldTypes, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: harvest.CustomFieldTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			params := &harvest.ListCustomFieldsParams{}
			if cmd.Flags().Changed("include-inactive") {
				params.IncludeInactive = harvest.Bool(includeInactive)
			}

			fields, err := client.CustomFields().List(context.Background(), args[0], params, onBehalfOf())
			if err != nil {
				return fmt.Errorf("failed to list custom fields: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), fields, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Name Key", "Value Type", "Active", "Required", "Options")

				for _, field := range fields {
					_ = table.Append([]string{
						strconv.FormatInt(field.ID, 10),
						field.Name,
						field.NameKey,
						field.ValueType,
						strconv.FormatBool(field.Active),
						strconv.FormatBool(field.Required),
						strconv.Itoa(len(field.CustomFieldOptions)),
					})
				}
			})
		},
	}

	cmd.Flags().BoolVar(&includeInactive, "include-inactive", false, "include inactive fields")

	return cmd
}

func newCustomFieldsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOM_FIELD_ID",
		Short: "Get custom field details",
		Long:  "Display detailed information about a specific custom field",
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

			field, err := client.CustomFields().Get(context.Background(), id, onBehalfOf())
			if err != nil {
				return fmt.Errorf("failed to get custom field: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), field, propertyTable([][]string{
				{"ID", strconv.FormatInt(field.ID, 10)},
				{"Name", field.Name},
				{"Name Key", field.NameKey},
				{"Field Type", field.FieldType},
				{"Value Type", field.ValueType},
				{"Active", strconv.FormatBool(field.Active)},
				{"Private", strconv.FormatBool(field.Private)},
				{"Required", strconv.FormatBool(field.Required)},
				{"Description", truncate(field.Description, constants.DescriptionDisplayLength)},
				{"Options", strconv.Itoa(len(field.CustomFieldOptions))},
			}))
		},
	}
}

func newCustomFieldsOptionsCommand() *cobra.Command {
	var optionType string

	cmd := &cobra.Command{
		Use:   "options CUSTOM_FIELD_ID",
		Short: "List custom field options",
		Long:  "List the options of a single or multi select custom field",
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

			options, err := client.CustomFields().ListOptions(context.Background(), id, optionType, onBehalfOf())
			if err != nil {
				return fmt.Errorf("failed to list custom field options: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), options, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Priority", "External ID")

				for _, option := range options {
					_ = table.Append([]string{
						strconv.FormatInt(option.ID, 10),
						option.Name,
						strconv.Itoa(option.Priority),
						formatOptionalString(option.ExternalID),
					})
				}
			})
		},
	}

	cmd.Flags().StringVar(&optionType, "type", constants.CustomFieldOptionsActive, "all, active or inactive")

	return cmd
}
