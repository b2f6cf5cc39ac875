package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent ingestion runs",
	Long:  `Show the most recent corpus builds, newest first, with the identifiers that failed.`,
	RunE:  runRuns,
}

var runsLimit int

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 10, "Maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	runs, err := ingestService.Runs(cmd.Context(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No ingestion runs recorded.")
		return nil
	}

	for i := range runs {
		r := &runs[i]
		cmd.Printf("%s  %s  %-10s ids %d-%d  saved %d  -> %s\n",
			shortID(r.ID), r.StartedAt.Local().Format("2006-01-02 15:04"), r.Dataset,
			r.Range.Start, r.Range.End, r.Saved, r.Output)
		if len(r.FailedIDs) > 0 {
			cmd.Printf("          failed: %v\n", r.FailedIDs)
		}
	}
	return nil
}

// shortID returns the first eight characters of a run identifier.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
