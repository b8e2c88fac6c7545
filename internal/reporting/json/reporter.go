package json

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Reporter struct {
	writer io.Writer
	logger ports.Logger
}

func NewReporter(logger ports.Logger) *Reporter {
	return &Reporter{writer: os.Stdout, logger: logger}
}

// WithWriter redirects output, mainly for tests.
func (r *Reporter) WithWriter(w io.Writer) *Reporter {
	r.writer = w
	return r
}

// Report is the machine-readable form of a run summary. It is also the body
// returned from a lambda invocation.
type Report struct {
	Job        domain.Job     `json:"job"`
	AccountID  string         `json:"account_id,omitempty"`
	StartedAt  string         `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Summary    ReportCounts   `json:"summary"`
	Discovered map[string]int `json:"discovered,omitempty"`
	Results    []ResultItem   `json:"results,omitempty"`
}

type ReportCounts struct {
	Discovered int `json:"discovered"`
	Tagged     int `json:"tagged"`
	DryRun     int `json:"dry_run"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

type ResultItem struct {
	Status       domain.TagStatus  `json:"status"`
	Category     domain.Category   `json:"category"`
	ResourceID   string            `json:"resource_id"`
	Tags         map[string]string `json:"tags,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

func NewReport(summary *domain.RunSummary) Report {
	report := Report{
		Job:        summary.Job,
		AccountID:  summary.AccountID,
		StartedAt:  summary.StartedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		DurationMS: summary.Duration.Milliseconds(),
		Summary: ReportCounts{
			Discovered: summary.TotalDiscovered(),
			Tagged:     summary.Count(domain.StatusTagged),
			DryRun:     summary.Count(domain.StatusDryRun),
			Failed:     summary.Count(domain.StatusFailed),
			Skipped:    summary.Count(domain.StatusSkipped),
		},
	}
	if len(summary.Discovered) > 0 {
		report.Discovered = make(map[string]int, len(summary.Discovered))
		for c, n := range summary.Discovered {
			report.Discovered[string(c)] = n
		}
	}

	results := make([]domain.TagResult, len(summary.Results))
	copy(results, summary.Results)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Category != results[j].Category {
			return results[i].Category < results[j].Category
		}
		return results[i].ResourceID < results[j].ResourceID
	})
	for _, res := range results {
		item := ResultItem{
			Status:     res.Status,
			Category:   res.Category,
			ResourceID: res.ResourceID,
			Tags:       res.Tags,
		}
		if res.Error != nil {
			item.ErrorMessage = res.Error.Error()
		}
		report.Results = append(report.Results, item)
	}
	return report
}

func (r *Reporter) Report(ctx context.Context, summary *domain.RunSummary) error {
	if summary == nil {
		return fmt.Errorf("cannot report a nil run summary")
	}
	if ctx.Err() != nil {
		r.logger.Warnf(ctx, "JSON report generation cancelled.")
		return ctx.Err()
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewReport(summary)); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
