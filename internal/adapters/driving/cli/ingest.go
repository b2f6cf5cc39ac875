package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build a corpus from a public catalogue",
	Long: `Fetch every identifier in a range from a public catalogue, map each
payload to a compact record, and write the records to a JSON corpus file.

Datasets:
  pokemon     - PokeAPI, ids 1-100, written to pokemon_data.json
  characters  - Rick and Morty API, ids 1-20, written to characters_processed.json

Records that cannot be fetched are reported and skipped; the build
continues with the next identifier.`,
	RunE: runIngest,
}

var (
	ingestDataset string
	ingestStart   int
	ingestEnd     int
	ingestOutput  string
	ingestPreview bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestDataset, "dataset", "d", "", "Dataset to ingest (pokemon, characters)")
	ingestCmd.Flags().IntVar(&ingestStart, "start", 0, "First identifier (default: dataset default)")
	ingestCmd.Flags().IntVar(&ingestEnd, "end", 0, "Last identifier, inclusive (default: dataset default)")
	ingestCmd.Flags().StringVarP(&ingestOutput, "output", "o", "", "Corpus file to write (default: dataset default)")
	ingestCmd.Flags().BoolVar(&ingestPreview, "preview", false, "Print the first record after saving")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	req := ingestRequest(cmd, settings.Ingest)
	logger.Section("Ingest")
	logger.Info("Dataset %s, ids %d-%d", req.Dataset, req.Range.Start, req.Range.End)

	result, err := ingestService.Ingest(cmd.Context(), req, func(id int) {
		cmd.Printf("Processing record %d...\n", id)
	})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	printIngestProblems(cmd, result)
	cmd.Printf("Saved %d records to %s\n", len(result.Records), result.OutputPath)

	if ingestPreview && len(result.Records) > 0 {
		data, err := encodeRecord(result.Records[0])
		if err != nil {
			return err
		}
		cmd.Println("\nExample record:")
		cmd.Print(string(data))
	}

	return nil
}

// ingestRequest merges flags over the configured ingest settings.
// Configured range and output only apply to the configured dataset.
func ingestRequest(cmd *cobra.Command, cfg domain.IngestSettings) driving.IngestRequest {
	dataset := cfg.Dataset
	if ingestDataset != "" {
		dataset = domain.Dataset(ingestDataset)
	}

	req := driving.IngestRequest{Dataset: dataset, Range: dataset.DefaultRange()}
	if dataset == cfg.Dataset {
		if cfg.Range.IsValid() {
			req.Range = cfg.Range
		}
		req.Output = cfg.Output
	}

	if cmd.Flags().Changed("start") {
		req.Range.Start = ingestStart
	}
	if cmd.Flags().Changed("end") {
		req.Range.End = ingestEnd
	}
	if ingestOutput != "" {
		req.Output = ingestOutput
	}
	return req
}

func printIngestProblems(cmd *cobra.Command, result *driving.IngestResult) {
	ids := make([]int, 0, len(result.Failures))
	for id := range result.Failures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		cmd.Printf("Failed to fetch record %d: %v\n", id, result.Failures[id])
	}
	for _, id := range result.Skipped {
		cmd.Printf("Skipped record %d: payload could not be mapped\n", id)
	}
}

func encodeRecord(r domain.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}
