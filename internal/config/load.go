package config

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	apperrors "github.com/olusolaa/customer-tagsync/internal/errors"
)

// Load decodes v over DefaultConfig and validates the result. Comma
// separated strings (from env vars or flags) decode into slices.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		trimSliceHook,
	)))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(ctx context.Context, cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(ctx, cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return apperrors.Wrap(err, apperrors.CodeConfigValidation, "configuration validation failed")
		}
		var details strings.Builder
		details.WriteString("Configuration validation failed:")
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return apperrors.NewUserFacing(apperrors.CodeConfigValidation, details.String(), "Please check your configuration file, TAGSYNC_* environment variables or flags.")
	}

	if _, err := regexp.Compile(cfg.Discovery.NamePattern); err != nil {
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigValidation,
			fmt.Sprintf("discovery.name_pattern %q is not a valid regular expression", cfg.Discovery.NamePattern), "")
	}
	return nil
}

func trimSliceHook(_ reflect.Type, _ reflect.Type, data any) (any, error) {
	items, ok := data.([]string)
	if !ok {
		return data, nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

// EnvKeys lists every key that may come from a TAGSYNC_* variable. Viper
// only resolves environment values for keys it already knows about.
var EnvKeys = []string{
	"job",
	"settings.log_level", "settings.log_format", "settings.reporter", "settings.no_color",
	"aws.region", "aws.rps",
	"document.bucket", "document.key",
	"spreadsheet.bucket", "spreadsheet.key", "spreadsheet.format", "spreadsheet.sheet",
	"spreadsheet.network_column", "spreadsheet.customer_column",
	"standard_tags.bucket", "standard_tags.key", "standard_tags.keys",
	"discovery.name_tag_key", "discovery.name_pattern", "discovery.customer_tag_key", "discovery.categories",
	"apply.categories", "apply.dry_run",
}

// BindEnv wires v to TAGSYNC_* environment variables, mapping "." to "_".
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range EnvKeys {
		if err := v.BindEnv(key); err != nil {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, fmt.Sprintf("failed to bind environment for %s", key))
		}
	}
	return nil
}
