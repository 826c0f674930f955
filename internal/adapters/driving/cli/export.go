package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

var (
	exportFrom   string
	exportTo     string
	exportEnv    string
	exportAgents []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run one export pass from the terminal",
	Long: `Runs a single export: fetches records processed inside the date range,
writes them to the sheet and reconciles shift labels across all stored rows.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "inclusive lower bound (ISO-8601)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "inclusive upper bound (ISO-8601)")
	exportCmd.Flags().StringVar(&exportEnv, "env", "", "index partition (defaults to the configured namespace)")
	exportCmd.Flags().StringSliceVar(&exportAgents, "agents", nil, "restrict to these client/agent tags")
	_ = exportCmd.MarkFlagRequired("from")
	_ = exportCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	from, err := parseDateFlag(exportFrom, false)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parseDateFlag(exportTo, true)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	application, err := buildApp(ctx)
	if err != nil {
		return err
	}

	summary, err := application.export.Run(ctx, domain.ExportRequest{
		Namespace: exportEnv,
		From:      from,
		To:        to,
		Agents:    exportAgents,
	})
	if errors.Is(err, domain.ErrNoRecords) {
		cmd.Println("No matching records in the requested range.")
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Printf("%s (run %s)\n", summary.Message, summary.RunID)
	return nil
}

// parseDateFlag accepts a full RFC 3339 instant or a bare calendar date.
// A bare date used as the upper bound covers the whole day.
func parseDateFlag(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", raw)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t.UTC(), nil
}
