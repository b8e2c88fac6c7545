package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Resolve VPC customers and write the tag document to S3.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, domain.JobDiscover)
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply default and per-resource tags from the tag document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, domain.JobApply)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run discover followed by apply.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, domain.JobRun)
	},
}

func runJob(cmd *cobra.Command, job domain.Job) error {
	application, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	if _, err := application.Run(cmd.Context(), job); err != nil {
		return reportFailure(err)
	}
	return nil
}
