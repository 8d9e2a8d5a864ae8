package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

const timeLayout = "2006-01-02 15:04:05"

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(keyOutput))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// renderOutput writes data as JSON or YAML, or calls fillTable to build
// the table rendering.
func renderOutput(out io.Writer, data interface{}, fillTable func(table *tablewriter.Table)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(out)
		fillTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// propertyTable fills a two column Property/Value table.
func propertyTable(rows [][]string) func(table *tablewriter.Table) {
	return func(table *tablewriter.Table) {
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row)
		}
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(timeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return formatTime(*t)
}

func formatOptionalString(s *string) string {
	if s == nil || *s == "" {
		return constants.NotAvailable
	}

	return *s
}

func formatIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	return strings.Join(parts, ", ")
}

// truncate shortens s to length characters, counting runes so multi-byte
// text is never split.
func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	return string(runes[:length-3]) + "..."
}
