package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
	assert.Equal(t, "Build a corpus from a public catalogue", ingestCmd.Short)
}

func TestIngestCmd_Flags(t *testing.T) {
	for _, name := range []string{"dataset", "start", "end", "output", "preview"} {
		assert.NotNil(t, ingestCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "d", ingestCmd.Flags().Lookup("dataset").Shorthand)
	assert.Equal(t, "o", ingestCmd.Flags().Lookup("output").Shorthand)
}

func TestIngestCmd_ProgressAndSummary(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.ingest.ids = []int{1, 2, 3}
	ts.ingest.result = &driving.IngestResult{
		Records: []domain.Record{
			&domain.CharacterRecord{ID: 1, Name: "Rick Sanchez"},
			&domain.CharacterRecord{ID: 3, Name: "Summer Smith"},
		},
		Failures:   map[int]error{2: errors.New("status 500")},
		OutputPath: "characters_processed.json",
	}

	out, _, err := execute("ingest")

	require.NoError(t, err)
	assert.Contains(t, out, "Processing record 1...\n")
	assert.Contains(t, out, "Processing record 3...\n")
	assert.Contains(t, out, "Failed to fetch record 2: status 500\n")
	assert.Contains(t, out, "Saved 2 records to characters_processed.json\n")
	assert.NotContains(t, out, "Example record:")

	assert.Equal(t, domain.DatasetCharacters, ts.ingest.lastReq.Dataset)
	assert.Equal(t, domain.IDRange{Start: 1, End: 20}, ts.ingest.lastReq.Range)
	assert.Empty(t, ts.ingest.lastReq.Output)
}

func TestIngestCmd_FlagsOverrideSettings(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.ingest.result = &driving.IngestResult{OutputPath: "mons.json"}

	_, _, err := execute("ingest", "--dataset", "pokemon", "--start", "5", "--end", "7", "-o", "mons.json")

	require.NoError(t, err)
	req := ts.ingest.lastReq
	assert.Equal(t, domain.DatasetPokemon, req.Dataset)
	assert.Equal(t, domain.IDRange{Start: 5, End: 7}, req.Range)
	assert.Equal(t, "mons.json", req.Output)
}

func TestIngestCmd_OtherDatasetIgnoresConfiguredRange(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.settings.settings.Ingest.Range = domain.IDRange{Start: 3, End: 4}
	ts.settings.settings.Ingest.Output = "mine.json"
	ts.ingest.result = &driving.IngestResult{}

	_, _, err := execute("ingest", "--dataset", "pokemon", "--end", "10")

	require.NoError(t, err)
	assert.Equal(t, domain.IDRange{Start: 1, End: 10}, ts.ingest.lastReq.Range)
	assert.Empty(t, ts.ingest.lastReq.Output)
}

func TestIngestCmd_ConfiguredRange(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.settings.settings.Ingest.Range = domain.IDRange{Start: 3, End: 4}
	ts.settings.settings.Ingest.Output = "mine.json"
	ts.ingest.result = &driving.IngestResult{}

	_, _, err := execute("ingest")

	require.NoError(t, err)
	assert.Equal(t, domain.IDRange{Start: 3, End: 4}, ts.ingest.lastReq.Range)
	assert.Equal(t, "mine.json", ts.ingest.lastReq.Output)
}

func TestIngestCmd_Preview(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.ingest.result = &driving.IngestResult{
		Records:    []domain.Record{&domain.CharacterRecord{ID: 1, Name: "Rick Sanchez"}},
		OutputPath: "characters_processed.json",
	}

	out, _, err := execute("ingest", "--preview")

	require.NoError(t, err)
	assert.Contains(t, out, "\nExample record:\n")
	assert.Contains(t, out, `"name": "Rick Sanchez"`)
}

func TestIngestCmd_SkippedRecords(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.ingest.result = &driving.IngestResult{Skipped: []int{9}, OutputPath: "x.json"}

	out, _, err := execute("ingest")

	require.NoError(t, err)
	assert.Contains(t, out, "Skipped record 9")
	assert.Contains(t, out, "Saved 0 records to x.json")
}

func TestIngestCmd_ServiceError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	ts.ingest.err = domain.ErrInvalidInput

	_, _, err := execute("ingest", "--start", "5", "--end", "1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ingest failed")
}

func TestIngestCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	ingestService = nil

	_, _, err := execute("ingest")

	assert.EqualError(t, err, "ingest service not configured")
}
