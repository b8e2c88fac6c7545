package config

import (
	"path"
	"strings"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/log"
)

const (
	EnvPrefix = "TAGSYNC"

	ReporterText = "text"
	ReporterJSON = "json"

	SpreadsheetXLSX = "xlsx"
	SpreadsheetCSV  = "csv"
)

type Config struct {
	// Job selects what the lambda entry point runs: discover, apply or run.
	Job          string             `mapstructure:"job" validate:"omitempty,oneof=discover apply run"`
	Settings     SettingsConfig     `mapstructure:"settings"`
	AWS          AWSConfig          `mapstructure:"aws"`
	Document     ObjectRef          `mapstructure:"document" validate:"required"`
	Spreadsheet  SpreadsheetConfig  `mapstructure:"spreadsheet"`
	StandardTags StandardTagsConfig `mapstructure:"standard_tags"`
	// DefaultTags is used as-is when no standard tags object is configured.
	// Pairs rather than a map because viper folds map keys to lower case.
	DefaultTags []TagPair       `mapstructure:"default_tags" validate:"dive"`
	Discovery   DiscoveryConfig `mapstructure:"discovery"`
	Apply       ApplyConfig     `mapstructure:"apply"`
}

type SettingsConfig struct {
	LogLevel  log.Level  `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat log.Format `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
	Reporter  string     `mapstructure:"reporter" validate:"omitempty,oneof=text json"`
	NoColor   bool       `mapstructure:"no_color"`
}

type AWSConfig struct {
	// Region overrides the SDK default chain when set.
	Region string `mapstructure:"region"`
	// RPS caps mutating tag calls per second.
	RPS int `mapstructure:"rps" validate:"gte=0,lte=100"`
}

type ObjectRef struct {
	Bucket string `mapstructure:"bucket" validate:"required"`
	Key    string `mapstructure:"key" validate:"required"`
}

type SpreadsheetConfig struct {
	Bucket         string         `mapstructure:"bucket"`
	Key            string         `mapstructure:"key"`
	Format         string         `mapstructure:"format" validate:"omitempty,oneof=xlsx csv"`
	Sheet          string         `mapstructure:"sheet"`
	NetworkColumn  string         `mapstructure:"network_column" validate:"required"`
	CustomerColumn string         `mapstructure:"customer_column" validate:"required"`
	Substitutions  []Substitution `mapstructure:"substitutions" validate:"dive"`
}

type TagPair struct {
	Key   string `mapstructure:"key" validate:"required"`
	Value string `mapstructure:"value"`
}

// Substitution rewrites a malformed fragment of a spreadsheet number cell.
type Substitution struct {
	From string `mapstructure:"from" validate:"required"`
	To   string `mapstructure:"to"`
}

type StandardTagsConfig struct {
	Bucket string   `mapstructure:"bucket"`
	Key    string   `mapstructure:"key"`
	Keys   []string `mapstructure:"keys"`
}

type DiscoveryConfig struct {
	NameTagKey     string   `mapstructure:"name_tag_key" validate:"required"`
	NamePattern    string   `mapstructure:"name_pattern" validate:"required"`
	CustomerTagKey string   `mapstructure:"customer_tag_key" validate:"required"`
	Categories     []string `mapstructure:"categories" validate:"min=1,dive,oneof=ec2 igw ngw"`
}

type ApplyConfig struct {
	Categories []string `mapstructure:"categories" validate:"min=1,dive,oneof=ec2 igw ngw s3"`
	DryRun     bool     `mapstructure:"dry_run"`
}

// SpreadsheetFormat returns the configured format, falling back to the key
// extension.
func (s SpreadsheetConfig) SpreadsheetFormat() string {
	if s.Format != "" {
		return s.Format
	}
	if strings.EqualFold(path.Ext(s.Key), ".csv") {
		return SpreadsheetCSV
	}
	return SpreadsheetXLSX
}

func (s StandardTagsConfig) Enabled() bool {
	return s.Bucket != "" && s.Key != ""
}

func (c *Config) DiscoveryCategories() ([]domain.Category, error) {
	return domain.ParseCategories(c.Discovery.Categories)
}

func (c *Config) ApplyCategories() ([]domain.Category, error) {
	return domain.ParseCategories(c.Apply.Categories)
}

func (c *Config) StaticDefaultTags() domain.Tags {
	tags := make(domain.Tags, len(c.DefaultTags))
	for _, p := range c.DefaultTags {
		tags[p.Key] = p.Value
	}
	return tags
}

// MissingDefaultTagKeys lists the standard tag keys that default_tags does
// not cover. Only meaningful when no standard tags object is configured.
func (c *Config) MissingDefaultTagKeys() []string {
	static := c.StaticDefaultTags()
	var missing []string
	for _, key := range c.StandardTags.Keys {
		if _, ok := static[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func (c *Config) SubstitutionTable() map[string]string {
	table := make(map[string]string, len(c.Spreadsheet.Substitutions))
	for _, s := range c.Spreadsheet.Substitutions {
		table[s.From] = s.To
	}
	return table
}

// SpreadsheetBucket defaults to the document bucket.
func (c *Config) SpreadsheetBucket() string {
	if c.Spreadsheet.Bucket != "" {
		return c.Spreadsheet.Bucket
	}
	return c.Document.Bucket
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
			Reporter:  ReporterText,
		},
		AWS: AWSConfig{RPS: 5},
		Document: ObjectRef{
			Key: "config.json",
		},
		Spreadsheet: SpreadsheetConfig{
			Key:            "customers.xlsx",
			NetworkColumn:  "VPC",
			CustomerColumn: "Customer",
			Substitutions: []Substitution{
				{From: "O", To: "0"},
				{From: "o", To: "0"},
				{From: "l", To: "1"},
				{From: "I", To: "1"},
			},
		},
		StandardTags: StandardTagsConfig{
			Keys: []string{domain.TagKeyEnvironmentType, domain.TagKeyCostCenter, domain.TagKeyPlatform},
		},
		Discovery: DiscoveryConfig{
			NameTagKey:     domain.TagKeyName,
			NamePattern:    `^customer-(\d+)$`,
			CustomerTagKey: domain.TagKeyCustomerName,
			Categories:     []string{"ec2", "igw", "ngw"},
		},
		Apply: ApplyConfig{
			Categories: []string{"ec2", "igw", "ngw", "s3"},
		},
	}
}
