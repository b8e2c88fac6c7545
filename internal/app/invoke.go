package app

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/errors"
	jsonreporter "github.com/olusolaa/customer-tagsync/internal/reporting/json"
)

const StatusOK = 200

// Event is the optional invocation payload. Job overrides the job the
// function was deployed for; DryRun forces a dry run of the apply job.
type Event struct {
	Job    string `json:"job,omitempty"`
	DryRun bool   `json:"dry_run,omitempty"`
}

// Response is the invocation result returned on success.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type responseBody struct {
	Message string                `json:"message"`
	Reports []jsonreporter.Report `json:"reports"`
}

// Invoke runs one job for a function invocation. Any job failure is
// returned as an error so the invocation itself fails.
func (a *Application) Invoke(ctx context.Context, job domain.Job, event Event) (Response, error) {
	if event.Job != "" {
		job = domain.Job(strings.ToLower(strings.TrimSpace(event.Job)))
	}
	if event.DryRun && !a.Applier.DryRun() {
		a.Applier.SetDryRun(true)
		defer a.Applier.SetDryRun(false)
	}

	summaries, err := a.Run(ctx, job)
	if err != nil {
		return Response{}, err
	}

	body := responseBody{Message: completionMessage(job)}
	for _, s := range summaries {
		body.Reports = append(body.Reports, jsonreporter.NewReport(s))
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(body)
	if err != nil {
		return Response{}, errors.Wrap(err, errors.CodeInternal, "failed to encode invocation response")
	}
	return Response{StatusCode: StatusOK, Body: string(data)}, nil
}

func completionMessage(job domain.Job) string {
	switch job {
	case domain.JobDiscover:
		return "Configuration document written successfully!"
	case domain.JobApply:
		return "Tags updated successfully!"
	default:
		return "Discovery and tagging completed successfully!"
	}
}
