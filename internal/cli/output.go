package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/storefront/internal/config"
	"github.com/rshade/storefront/internal/pager"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

var (
	errUnsupportedFormat = errors.New("unsupported output format")
	errNotSignedIn       = errors.New("not signed in")
	errInvalidID         = errors.New("invalid id")
	errInvalidQuantity   = errors.New("invalid quantity")
	errAlreadyPaid       = errors.New("already paid")
	errNotInteractive    = errors.New("stdout is not a terminal")
)

// outputFormat returns --output, falling back to output.default_format.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString(flagOutput)
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(format)
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedFormat, format)
	}
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(cmd *cobra.Command, v any, table func(w io.Writer) error) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Conventional YAML indent.
		if err = enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return table(w)
	}
}

// renderTable writes a header and rows through a tabwriter.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// pageLine renders a page window as text, e.g. "Page 5 of 10: 1 2 … 4 [5] 6 … 9 10".
func pageLine(state pager.PageState) string {
	if state.Empty() {
		return "No pages"
	}
	window := state.Window()
	parts := make([]string, len(window))
	for i, tok := range window {
		switch {
		case tok.IsEllipsis():
			parts[i] = tok.String()
		case tok.Page() == state.Current():
			parts[i] = "[" + tok.String() + "]"
		default:
			parts[i] = tok.String()
		}
	}
	return fmt.Sprintf("Page %d of %d: %s", state.Current(), state.Total(), strings.Join(parts, " "))
}
