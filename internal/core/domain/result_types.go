package domain

import "time"

type TagStatus string

const (
	StatusTagged  TagStatus = "TAGGED"
	StatusDryRun  TagStatus = "DRY_RUN"
	StatusFailed  TagStatus = "FAILED"
	StatusSkipped TagStatus = "SKIPPED"
)

type TagResult struct {
	Category   Category
	ResourceID string
	Status     TagStatus
	Tags       Tags
	Error      error
}

type Job string

const (
	JobDiscover Job = "discover"
	JobApply    Job = "apply"
	// JobRun is discovery followed by tagging; an empty job means the same.
	JobRun Job = "run"
)

// RunSummary describes the outcome of one job invocation.
type RunSummary struct {
	Job       Job
	AccountID string
	StartedAt time.Time
	Duration  time.Duration
	// Discovered counts resources written per category (discover job).
	Discovered map[Category]int
	// Results holds one entry per resource processed (apply job).
	Results []TagResult
}

func (s *RunSummary) Count(status TagStatus) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

func (s *RunSummary) TotalDiscovered() int {
	n := 0
	for _, c := range s.Discovered {
		n += c
	}
	return n
}
