// Command lambda serves the jobs as an AWS Lambda function. Configuration
// comes from TAGSYNC_* variables; TAGSYNC_JOB selects discover, apply or run
// (run when empty) and the event payload may override it per invocation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/viper"

	"github.com/olusolaa/customer-tagsync/internal/app"
	"github.com/olusolaa/customer-tagsync/internal/config"
	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

func main() {
	ctx := context.Background()

	v := viper.New()
	if err := config.BindEnv(v); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	application, err := app.BuildApplicationFromViper(ctx, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Application initialization failed: %v\n", err)
		os.Exit(1)
	}

	job := domain.Job(application.Config.Job)
	lambda.Start(func(ctx context.Context, event app.Event) (app.Response, error) {
		return application.Invoke(ctx, job, event)
	})
}
