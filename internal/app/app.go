package app

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/config"
	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/core/service"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// Application holds the two jobs wired against one platform.
type Application struct {
	Discoverer *service.Discoverer
	Applier    *service.Applier
	Reporter   ports.Reporter
	Platform   Platform
	Logger     ports.Logger
	Config     *config.Config
}

// Discover runs the discovery job and reports its summary.
func (a *Application) Discover(ctx context.Context) (*domain.RunSummary, error) {
	a.Logger.Infof(ctx, "Starting customer discovery...")
	summary, err := a.Discoverer.Discover(ctx)
	return a.finish(ctx, summary, err, "Customer discovery")
}

// Apply runs the tagging job and reports its summary.
func (a *Application) Apply(ctx context.Context) (*domain.RunSummary, error) {
	a.Logger.Infof(ctx, "Starting tag application...")
	summary, err := a.Applier.Apply(ctx)
	return a.finish(ctx, summary, err, "Tag application")
}

// Run executes job. JobRun or an empty job runs discovery followed by
// tagging.
func (a *Application) Run(ctx context.Context, job domain.Job) ([]*domain.RunSummary, error) {
	switch job {
	case domain.JobDiscover:
		s, err := a.Discover(ctx)
		return []*domain.RunSummary{s}, err
	case domain.JobApply:
		s, err := a.Apply(ctx)
		return []*domain.RunSummary{s}, err
	case domain.JobRun, "":
		discovered, err := a.Discover(ctx)
		if err != nil {
			return []*domain.RunSummary{discovered}, err
		}
		applied, err := a.Apply(ctx)
		return []*domain.RunSummary{discovered, applied}, err
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			"unknown job '"+string(job)+"'", "Use 'discover', 'apply' or 'run'.")
	}
}

func (a *Application) finish(ctx context.Context, summary *domain.RunSummary, err error, what string) (*domain.RunSummary, error) {
	if summary != nil && a.Platform != nil {
		if accountID, accErr := a.Platform.AccountID(ctx); accErr == nil {
			summary.AccountID = accountID
		} else {
			a.Logger.Warnf(ctx, "Could not resolve AWS account id: %v", accErr)
		}
	}
	if err != nil {
		a.Logger.Errorf(ctx, err, "%s failed", what)
		return summary, err
	}
	if a.Reporter != nil {
		if repErr := a.Reporter.Report(ctx, summary); repErr != nil {
			a.Logger.Errorf(ctx, repErr, "Failed to write report")
		}
	}
	a.Logger.Infof(ctx, "%s completed successfully", what)
	return summary, nil
}
