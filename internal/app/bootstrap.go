package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/customer-tagsync/internal/adapters/document"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws"
	"github.com/olusolaa/customer-tagsync/internal/adapters/spreadsheet"
	"github.com/olusolaa/customer-tagsync/internal/config"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/core/service"
	"github.com/olusolaa/customer-tagsync/internal/errors"
	"github.com/olusolaa/customer-tagsync/internal/log"
	jsonreporter "github.com/olusolaa/customer-tagsync/internal/reporting/json"
	"github.com/olusolaa/customer-tagsync/internal/reporting/text"
)

// Platform is the cloud surface the jobs run against.
type Platform interface {
	Inventory() ports.NetworkInventory
	ObjectStore() ports.ObjectStore
	Taggers() []ports.ResourceTagger
	AccountID(ctx context.Context) (string, error)
}

// BuildApplicationFromViper loads configuration, the logger and the AWS
// provider, then wires the jobs.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat, Output: os.Stderr})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Infof(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	provLog := logger.WithFields(map[string]any{"provider": aws.ProviderTypeAWS})
	provider, err := aws.NewProvider(ctx, aws.ProviderConfig{Region: cfg.AWS.Region, RPS: cfg.AWS.RPS}, provLog)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigValidation, "failed to initialize AWS provider")
	}
	provLog.Infof(ctx, "Using AWS platform provider (Region: %s)", provider.Region())

	return BuildApplication(ctx, cfg, provider, logger)
}

// BuildApplication wires the jobs against platform. It performs no I/O.
func BuildApplication(ctx context.Context, cfg *config.Config, platform Platform, logger ports.Logger) (*Application, error) {
	if platform == nil {
		return nil, errors.New(errors.CodeInternal, "platform cannot be nil")
	}
	objects := platform.ObjectStore()

	registry := service.NewTaggerRegistry()
	for _, tagger := range platform.Taggers() {
		if err := registry.Register(tagger); err != nil {
			return nil, err
		}
	}
	logger.Debugf(ctx, "Registered taggers for categories: %v", registry.Categories())

	discoveryCategories, err := cfg.DiscoveryCategories()
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation, "invalid discovery.categories", "")
	}
	applyCategories, err := cfg.ApplyCategories()
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation, "invalid apply.categories", "")
	}

	sheetReader := spreadsheet.NewReader(objects, spreadsheet.Options{
		Bucket:         cfg.SpreadsheetBucket(),
		Key:            cfg.Spreadsheet.Key,
		Format:         cfg.Spreadsheet.SpreadsheetFormat(),
		Sheet:          cfg.Spreadsheet.Sheet,
		NetworkColumn:  cfg.Spreadsheet.NetworkColumn,
		CustomerColumn: cfg.Spreadsheet.CustomerColumn,
		Substitutions:  cfg.SubstitutionTable(),
	}, logger)

	resolver, err := service.NewResolver(platform.Inventory(), sheetReader, service.ResolverOptions{
		NameTagKey:  cfg.Discovery.NameTagKey,
		NamePattern: cfg.Discovery.NamePattern,
	}, logger)
	if err != nil {
		return nil, err
	}

	store := document.NewStore(objects, cfg.Document.Bucket, cfg.Document.Key, logger)

	var defaults ports.DefaultTagsSource
	if cfg.StandardTags.Enabled() {
		defaults = document.NewStandardTagsLoader(objects, cfg.StandardTags.Bucket, cfg.StandardTags.Key, cfg.StandardTags.Keys, logger)
		logger.Debugf(ctx, "Default tags from standard tags object s3://%s/%s", cfg.StandardTags.Bucket, cfg.StandardTags.Key)
	} else if missing := cfg.MissingDefaultTagKeys(); len(missing) > 0 {
		logger.Warnf(ctx, "No standard tags object configured and default_tags has no value for %v; those tags will not be applied", missing)
	}

	discoverer := service.NewDiscoverer(
		resolver,
		service.NewEnumerator(platform.Inventory(), discoveryCategories, cfg.Discovery.CustomerTagKey, logger),
		service.NewWriter(store, defaults, cfg.StaticDefaultTags(), logger),
		logger.WithFields(map[string]any{"job": "discover"}),
	)
	applier := service.NewApplier(store, registry, service.ApplierOptions{
		Categories: applyCategories,
		DryRun:     cfg.Apply.DryRun,
	}, logger.WithFields(map[string]any{"job": "apply"}))

	reporter, err := newReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Application bootstrap complete")
	return &Application{
		Discoverer: discoverer,
		Applier:    applier,
		Reporter:   reporter,
		Platform:   platform,
		Logger:     logger,
		Config:     cfg,
	}, nil
}

func newReporter(cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": cfg.Settings.Reporter})
	switch cfg.Settings.Reporter {
	case text.ReporterTypeText, "":
		return text.NewReporter(text.Config{NoColor: cfg.Settings.NoColor}, reportLog), nil
	case jsonreporter.ReporterTypeJSON:
		return jsonreporter.NewReporter(reportLog), nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.Reporter), "Supported: text, json")
	}
}
