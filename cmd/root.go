package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/customer-tagsync/internal/app"
	"github.com/olusolaa/customer-tagsync/internal/config"
	apperrors "github.com/olusolaa/customer-tagsync/internal/errors"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	reporter  string
	dryRun    bool
)

var rootCmd = &cobra.Command{
	Use:   "tagsync",
	Short: "Discovers customer-owned network resources and applies customer tags.",
	Long: `tagsync maps VPCs named customer-NN to customer names using a spreadsheet
stored in S3, writes the resulting per-resource tag document back to S3
(discover), and applies default plus per-resource tags from that document to
EC2 instances, internet gateways, NAT gateways and S3 buckets (apply).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .tagsync.yaml in the current or home directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&reporter, "report", "", "Report format written to stdout (text, json)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log the tags that would be applied without calling AWS")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("settings.reporter", rootCmd.PersistentFlags().Lookup("report"))
	viper.BindPFlag("apply.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))

	cobra.CheckErr(config.BindEnv(viper.GetViper()))

	rootCmd.AddCommand(discoverCmd, applyCmd, runCmd)
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".tagsync")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
		fmt.Fprintln(os.Stderr, "Config file not found, using defaults and environment variables.")
	}
	return nil
}

func bootstrap(ctx context.Context) (*app.Application, error) {
	application, err := app.BuildApplicationFromViper(ctx, viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Application initialization failed: %v\n", err)
		if appErr := (*apperrors.AppError)(nil); errors.As(err, &appErr) && appErr.IsUserFacing {
			fmt.Fprintf(os.Stderr, "Error Details: %s\n", appErr.Message)
			if appErr.SuggestedAction != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", appErr.SuggestedAction)
			}
		}
		return nil, err
	}
	return application, nil
}

func reportFailure(err error) error {
	userMsg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return err
}
