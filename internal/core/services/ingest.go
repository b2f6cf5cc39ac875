package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

// Ensure CorpusBuilder implements the interface.
var _ driving.IngestService = (*CorpusBuilder)(nil)

// CorpusBuilder fetches a range of records, maps them and writes the corpus.
type CorpusBuilder struct {
	fetchers driven.FetcherFactory
	mappers  driven.MapperRegistry
	corpus   driven.CorpusStore
	runs     driven.RunStore
	now      func() time.Time
}

// NewCorpusBuilder creates a new corpus builder.
// runs is optional - if nil, run history is not recorded.
func NewCorpusBuilder(
	fetchers driven.FetcherFactory,
	mappers driven.MapperRegistry,
	corpus driven.CorpusStore,
	runs driven.RunStore,
) *CorpusBuilder {
	return &CorpusBuilder{
		fetchers: fetchers,
		mappers:  mappers,
		corpus:   corpus,
		runs:     runs,
		now:      time.Now,
	}
}

// Ingest walks the range in ascending order, one identifier at a time.
// A failed fetch or an unmappable payload is reported and skipped; only
// setup errors, cancellation and a failed write abort the build.
func (b *CorpusBuilder) Ingest(
	ctx context.Context,
	req driving.IngestRequest,
	progress driving.ProgressFunc,
) (*driving.IngestResult, error) {
	if !req.Dataset.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDataset, req.Dataset)
	}
	if !req.Range.IsValid() {
		return nil, fmt.Errorf("%w: invalid range %d-%d", domain.ErrInvalidInput, req.Range.Start, req.Range.End)
	}
	output := req.Output
	if output == "" {
		output = req.Dataset.DefaultOutput()
	}

	fetcher, err := b.fetchers.Create(req.Dataset)
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}
	mapper, err := b.mappers.Get(req.Dataset)
	if err != nil {
		return nil, fmt.Errorf("get mapper: %w", err)
	}

	logger.Section("Ingest " + req.Dataset.String())
	logger.Info("Ingesting %s %d-%d into %s", req.Dataset, req.Range.Start, req.Range.End, output)

	started := b.now()
	result := &driving.IngestResult{
		Records:    make([]domain.Record, 0, req.Range.Len()),
		Failures:   make(map[int]error),
		OutputPath: output,
	}

	for id := req.Range.Start; id <= req.Range.End; id++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(id)
		}

		raw, err := fetcher.Fetch(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("Failed to fetch %s %d: %v", req.Dataset, id, err)
			result.Failures[id] = err
			continue
		}

		record, err := mapper.Map(raw)
		if err != nil || record == nil {
			if err != nil {
				logger.Warn("Skipping %s %d: %v", req.Dataset, id, err)
			} else {
				logger.Warn("Skipping %s %d: no record", req.Dataset, id)
			}
			result.Skipped = append(result.Skipped, id)
			continue
		}

		logger.Debug("Mapped %s %d (%s)", req.Dataset, record.RecordID(), record.RecordName())
		result.Records = append(result.Records, record)
	}

	if err := b.corpus.Save(output, result.Records); err != nil {
		return nil, fmt.Errorf("save corpus: %w", err)
	}

	result.Run = &domain.IngestRun{
		ID:          uuid.New().String(),
		Dataset:     req.Dataset,
		Range:       req.Range,
		Output:      output,
		Saved:       len(result.Records),
		FailedIDs:   failedIDs(result),
		StartedAt:   started,
		CompletedAt: b.now(),
	}

	if b.runs != nil {
		if err := b.runs.Save(ctx, result.Run); err != nil {
			logger.Warn("Failed to record ingest run: %v", err)
		}
	}

	logger.Info("Ingest complete: %d saved, %d failed, %d skipped",
		len(result.Records), len(result.Failures), len(result.Skipped))
	return result, nil
}

// Runs returns recent ingestion runs, newest first.
func (b *CorpusBuilder) Runs(ctx context.Context, limit int) ([]domain.IngestRun, error) {
	if b.runs == nil {
		return []domain.IngestRun{}, nil
	}
	runs, err := b.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

func failedIDs(r *driving.IngestResult) []int {
	ids := make([]int, 0, len(r.Failures)+len(r.Skipped))
	for id := range r.Failures {
		ids = append(ids, id)
	}
	ids = append(ids, r.Skipped...)
	sort.Ints(ids)
	return ids
}
