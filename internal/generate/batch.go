package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"geninv/internal/logger"
	"geninv/internal/store"
)

// DefaultBatchSize is the number of records requested per batch.
const DefaultBatchSize = 5

// Report summarizes one batch: how many records the capability returned and
// how they reconciled against storage. New + Duplicates == Generated unless
// a non-uniqueness persistence error skipped a record.
type Report struct {
	Requested  int
	Generated  int
	New        int
	Duplicates int
}

// BatchSpec parameterizes the generic workflow over one entity kind.
type BatchSpec struct {
	Kind         string // entity kind for logging, e.g. "address"
	Requested    int
	SystemPrompt string
	UserPrompt   string
}

// RunBatch performs one generation batch: invoke the capability, parse and
// validate the returned records, then persist each record individually.
// A capability or validation failure aborts the batch with zero records.
// A persist error matching store.ErrDuplicate counts the record as a
// duplicate and processing continues; other persist errors are logged and
// the record is skipped.
func RunBatch[T any](ctx context.Context, gen TextGenerator, spec BatchSpec, validate func(T) error, persist func(context.Context, T) error) (Report, error) {
	log := logger.WithComponent("generate").With().Str("kind", spec.Kind).Logger()
	report := Report{Requested: spec.Requested}

	raw, err := gen.GenerateRecords(ctx, Request{
		SystemPrompt: spec.SystemPrompt,
		UserPrompt:   spec.UserPrompt,
		Temperature:  SamplingTemperature,
	})
	if err != nil {
		return report, fmt.Errorf("generation failed for %s batch: %w", spec.Kind, err)
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return report, fmt.Errorf("generation returned malformed %s records: %w", spec.Kind, err)
	}
	for _, rec := range records {
		if err := validate(rec); err != nil {
			return report, fmt.Errorf("generation returned invalid %s record: %w", spec.Kind, err)
		}
	}
	report.Generated = len(records)

	log.Info().
		Int("requested", spec.Requested).
		Int("generated", report.Generated).
		Msg("Persisting generated records")

	for _, rec := range records {
		err := persist(ctx, rec)
		switch {
		case err == nil:
			report.New++
		case errors.Is(err, store.ErrDuplicate):
			report.Duplicates++
			log.Debug().Err(err).Msg("Record rejected as duplicate")
		default:
			log.Warn().Err(err).Msg("Failed to persist record, skipping")
		}
	}

	log.Info().
		Int("new", report.New).
		Int("duplicates", report.Duplicates).
		Msg("Batch completed")

	return report, nil
}

// exclusionJSON renders the exclusion list for prompt embedding.
func exclusionJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
