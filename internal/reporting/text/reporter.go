package text

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	apperrors "github.com/olusolaa/customer-tagsync/internal/errors"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) *Reporter {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
}

// WithWriter redirects output, mainly for tests.
func (r *Reporter) WithWriter(w io.Writer) *Reporter {
	r.writer = w
	return r
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, summary *domain.RunSummary) error {
	if summary == nil {
		return fmt.Errorf("cannot report a nil run summary")
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	switch summary.Job {
	case domain.JobDiscover:
		r.reportDiscovery(tw, summary)
		return nil
	default:
		return r.reportApply(ctx, tw, summary)
	}
}

func (r *Reporter) reportDiscovery(w io.Writer, summary *domain.RunSummary) {
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(w, "Customer Discovery Report")
	fmt.Fprintln(w, "=========================")
	r.header(w, summary)
	fmt.Fprintln(w, "Category\tResources")
	fmt.Fprintln(w, "--------\t---------")

	categories := make([]domain.Category, 0, len(summary.Discovered))
	for c := range summary.Discovered {
		categories = append(categories, c)
	}
	domain.SortCategories(categories)
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%d\n", c, summary.Discovered[c])
	}
	fmt.Fprintf(w, "\nTotal written:\t%s\n", green(summary.TotalDiscovered()))
}

func (r *Reporter) reportApply(ctx context.Context, w io.Writer, summary *domain.RunSummary) error {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(w, "Tag Application Report")
	fmt.Fprintln(w, "======================")
	r.header(w, summary)

	if len(summary.Results) == 0 {
		fmt.Fprintln(w, "No resources found or processed.")
		return nil
	}

	results := make([]domain.TagResult, len(summary.Results))
	copy(results, summary.Results)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Category != results[j].Category {
			return results[i].Category < results[j].Category
		}
		return results[i].ResourceID < results[j].ResourceID
	})

	fmt.Fprintln(w, "Status\tCategory\tResource\tDetails")
	fmt.Fprintln(w, "------\t--------\t--------\t-------")
	for _, res := range results {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var status, details string
		switch res.Status {
		case domain.StatusTagged:
			status = green("[TAGGED]")
			details = formatTags(res.Tags)
		case domain.StatusDryRun:
			status = cyan("[DRY-RUN]")
			details = formatTags(res.Tags)
		case domain.StatusFailed:
			status = red("[FAILED]")
			details = fmt.Sprintf("%v", res.Error)
			if appErr := (*apperrors.AppError)(nil); errors.As(res.Error, &appErr) {
				details = fmt.Sprintf("%s (%s)", appErr.Message, apperrors.Kind(res.Error))
			}
		case domain.StatusSkipped:
			status = yellow("[SKIPPED]")
		default:
			status = "[UNKNOWN]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", status, res.Category, res.ResourceID, details)
	}

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "Total Resources Processed:\t%d\n", len(results))
	fmt.Fprintf(w, "Tagged:\t%s\n", green(summary.Count(domain.StatusTagged)))
	fmt.Fprintf(w, "Dry Run:\t%s\n", cyan(summary.Count(domain.StatusDryRun)))
	fmt.Fprintf(w, "Failed:\t%s\n", red(summary.Count(domain.StatusFailed)))
	fmt.Fprintf(w, "Skipped:\t%s\n", yellow(summary.Count(domain.StatusSkipped)))
	return nil
}

func (r *Reporter) header(w io.Writer, summary *domain.RunSummary) {
	if summary.AccountID != "" {
		fmt.Fprintf(w, "Account:\t%s\n", summary.AccountID)
	}
	fmt.Fprintf(w, "Duration:\t%s\n\n", summary.Duration.Round(time.Millisecond))
}

func formatTags(tags domain.Tags) string {
	keys := tags.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, tags[k]))
	}
	return strings.Join(parts, ", ")
}
