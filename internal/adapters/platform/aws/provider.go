package aws

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/ec2"
	aws_errors "github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/s3"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

const ProviderTypeAWS = "aws"

type ProviderConfig struct {
	Region string
	// RPS caps CreateTags and PutBucketTagging calls per second, shared
	// across both services.
	RPS int
}

// Provider wires the EC2 and S3 handlers over one SDK config.
type Provider struct {
	awsConfig aws.Config
	ec2       *ec2.Handler
	s3        *s3.Handler
	stsClient shared.STSClientInterface
	logger    ports.Logger

	accMu     sync.Mutex
	accountID string
}

type ProviderOption func(*providerOptions)

type providerOptions struct {
	ec2Opts   []ec2.HandlerOption
	s3Opts    []s3.HandlerOption
	stsClient shared.STSClientInterface
}

func WithEC2Options(opts ...ec2.HandlerOption) ProviderOption {
	return func(o *providerOptions) { o.ec2Opts = append(o.ec2Opts, opts...) }
}

func WithS3Options(opts ...s3.HandlerOption) ProviderOption {
	return func(o *providerOptions) { o.s3Opts = append(o.s3Opts, opts...) }
}

func WithSTSClient(client shared.STSClientInterface) ProviderOption {
	return func(o *providerOptions) {
		if client != nil {
			o.stsClient = client
		}
	}
}

// NewProvider loads the shared AWS config, honouring a region override.
func NewProvider(ctx context.Context, cfg ProviderConfig, logger ports.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AWS Provider")
	}
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation, "failed to load default AWS config",
			"Check AWS_PROFILE, AWS_REGION and credentials.")
	}
	return NewProviderFromConfig(awsCfg, cfg.RPS, logger, opts...), nil
}

func NewProviderFromConfig(awsCfg aws.Config, rps int, logger ports.Logger, opts ...ProviderOption) *Provider {
	o := &providerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	rl := limiter.New(rps, logger)
	errHandler := &aws_errors.DefaultErrorHandler{}

	ec2Opts := append([]ec2.HandlerOption{ec2.WithRateLimiter(rl), ec2.WithErrorHandler(errHandler)}, o.ec2Opts...)
	s3Opts := append([]s3.HandlerOption{s3.WithRateLimiter(rl), s3.WithErrorHandler(errHandler)}, o.s3Opts...)

	p := &Provider{
		awsConfig: awsCfg,
		ec2:       ec2.NewHandler(awsCfg, logger, ec2Opts...),
		s3:        s3.NewHandler(awsCfg, logger, s3Opts...),
		stsClient: o.stsClient,
		logger:    logger,
	}
	if p.stsClient == nil {
		p.stsClient = sts.NewFromConfig(awsCfg)
	}
	return p
}

func (p *Provider) Region() string {
	return p.awsConfig.Region
}

func (p *Provider) Inventory() ports.NetworkInventory {
	return p.ec2
}

func (p *Provider) ObjectStore() ports.ObjectStore {
	return p.s3
}

func (p *Provider) Taggers() []ports.ResourceTagger {
	return []ports.ResourceTagger{p.ec2, p.s3}
}

// AccountID resolves the caller account once and caches it.
func (p *Provider) AccountID(ctx context.Context) (string, error) {
	p.accMu.Lock()
	defer p.accMu.Unlock()
	if p.accountID != "" {
		return p.accountID, nil
	}

	out, err := p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", aws_errors.HandleAWSError("STS", "GetCallerIdentity", err, ctx)
	}
	if out.Account == nil {
		return "", errors.New(errors.CodePlatformAPIError, "AWS caller identity response did not contain Account ID")
	}
	p.accountID = aws.ToString(out.Account)
	return p.accountID, nil
}
