package text

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/errors"
	"github.com/olusolaa/customer-tagsync/internal/log"
)

func TestReporter_Apply(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Config{NoColor: true}, log.Nop()).WithWriter(&buf)

	summary := &domain.RunSummary{
		Job:       domain.JobApply,
		AccountID: "111122223333",
		Duration:  1500 * time.Millisecond,
		Results: []domain.TagResult{
			{Category: domain.CategoryIGW, ResourceID: "igw-1", Status: domain.StatusTagged, Tags: domain.Tags{"B": "2", "A": "1"}},
			{Category: domain.CategoryEC2, ResourceID: "i-1", Status: domain.StatusFailed, Error: errors.New(errors.CodeResourceNotFound, "EC2 instance 'i-1' not found")},
			{Category: domain.CategoryS3, ResourceID: "logs", Status: domain.StatusSkipped},
		},
	}

	require.NoError(t, r.Report(context.Background(), summary))

	out := buf.String()
	assert.Contains(t, out, "Tag Application Report")
	assert.Contains(t, out, "111122223333")
	assert.Contains(t, out, "A=1, B=2")
	assert.Contains(t, out, "EC2 instance 'i-1' not found (not_found)")
	assert.Contains(t, out, "[SKIPPED]")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("i-1")), bytes.Index(buf.Bytes(), []byte("igw-1")))
}

func TestReporter_Discovery(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Config{NoColor: true}, log.Nop()).WithWriter(&buf)

	err := r.Report(context.Background(), &domain.RunSummary{
		Job:        domain.JobDiscover,
		Discovered: map[domain.Category]int{domain.CategoryNGW: 1, domain.CategoryEC2: 4},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Customer Discovery Report")
	assert.Regexp(t, `Total written:\s+5`, buf.String())
}

func TestReporter_EmptyApply(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Config{NoColor: true}, log.Nop()).WithWriter(&buf)

	require.NoError(t, r.Report(context.Background(), &domain.RunSummary{Job: domain.JobApply}))
	assert.Contains(t, buf.String(), "No resources found or processed.")
}
