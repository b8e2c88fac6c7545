package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	aws_errors "github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

const serviceName = "EC2"

// Handler lists VPCs and VPC-attached resources and tags them. It
// implements ports.NetworkInventory and ports.ResourceTagger.
type Handler struct {
	client       EC2ClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

// HandlerOption defines a function signature for configuring the Handler.
type HandlerOption func(*Handler)

// WithEC2Client provides an option to set a custom EC2 client.
func WithEC2Client(client EC2ClientInterface) HandlerOption {
	return func(h *Handler) {
		if client != nil {
			h.client = client
		}
	}
}

// WithRateLimiter sets the limiter used before CreateTags.
func WithRateLimiter(limiter shared.RateLimiter) HandlerOption {
	return func(h *Handler) {
		if limiter != nil {
			h.limiter = limiter
		}
	}
}

// WithErrorHandler provides an option to set a custom error handler.
func WithErrorHandler(handler shared.ErrorHandler) HandlerOption {
	return func(h *Handler) {
		if handler != nil {
			h.errorHandler = handler
		}
	}
}

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		client:       ec2.NewFromConfig(cfg),
		errorHandler: &aws_errors.DefaultErrorHandler{},
		logger:       logger.WithFields(map[string]any{"component": "ec2_handler"}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Categories() []domain.Category {
	return []domain.Category{domain.CategoryEC2, domain.CategoryIGW, domain.CategoryNGW}
}

func (h *Handler) ListVPCs(ctx context.Context) ([]domain.VPC, error) {
	paginator := ec2.NewDescribeVpcsPaginator(h.client, &ec2.DescribeVpcsInput{})

	var vpcs []domain.VPC
	pageNum := 0
	for paginator.HasMorePages() {
		pageNum++
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle(serviceName, fmt.Sprintf("DescribeVpcs (page %d)", pageNum), err, ctx)
		}
		for _, vpc := range output.Vpcs {
			mapped, mapErr := mapVPC(vpc)
			if mapErr != nil {
				h.logger.Errorf(ctx, mapErr, "Failed to map VPC, skipping")
				continue
			}
			vpcs = append(vpcs, mapped)
		}
	}
	h.logger.Debugf(ctx, "Listed %d VPCs over %d page(s)", len(vpcs), pageNum)
	return vpcs, nil
}

func (h *Handler) ListResources(ctx context.Context, category domain.Category) ([]domain.NetworkResource, error) {
	switch category {
	case domain.CategoryEC2:
		return h.listInstances(ctx)
	case domain.CategoryIGW:
		return h.listInternetGateways(ctx)
	case domain.CategoryNGW:
		return h.listNatGateways(ctx)
	default:
		return nil, errors.New(errors.CodeNotImplemented, fmt.Sprintf("resource category '%s' not supported by EC2 handler", category))
	}
}

func (h *Handler) listInstances(ctx context.Context) ([]domain.NetworkResource, error) {
	input := &ec2.DescribeInstancesInput{Filters: BuildListFilters(domain.CategoryEC2)}
	paginator := ec2.NewDescribeInstancesPaginator(h.client, input)

	var out []domain.NetworkResource
	pageNum := 0
	for paginator.HasMorePages() {
		pageNum++
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle(serviceName, fmt.Sprintf("DescribeInstances (page %d)", pageNum), err, ctx)
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				if res, ok := mapInstance(instance); ok {
					out = append(out, res)
				}
			}
		}
	}
	h.logger.Debugf(ctx, "Listed %d EC2 instances over %d page(s)", len(out), pageNum)
	return out, nil
}

func (h *Handler) listInternetGateways(ctx context.Context) ([]domain.NetworkResource, error) {
	paginator := ec2.NewDescribeInternetGatewaysPaginator(h.client, &ec2.DescribeInternetGatewaysInput{})

	var out []domain.NetworkResource
	pageNum := 0
	for paginator.HasMorePages() {
		pageNum++
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle(serviceName, fmt.Sprintf("DescribeInternetGateways (page %d)", pageNum), err, ctx)
		}
		for _, igw := range output.InternetGateways {
			if res, ok := mapInternetGateway(igw); ok {
				out = append(out, res)
			}
		}
	}
	h.logger.Debugf(ctx, "Listed %d internet gateways over %d page(s)", len(out), pageNum)
	return out, nil
}

func (h *Handler) listNatGateways(ctx context.Context) ([]domain.NetworkResource, error) {
	input := &ec2.DescribeNatGatewaysInput{Filter: BuildListFilters(domain.CategoryNGW)}
	paginator := ec2.NewDescribeNatGatewaysPaginator(h.client, input)

	var out []domain.NetworkResource
	pageNum := 0
	for paginator.HasMorePages() {
		pageNum++
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle(serviceName, fmt.Sprintf("DescribeNatGateways (page %d)", pageNum), err, ctx)
		}
		for _, nat := range output.NatGateways {
			if res, ok := mapNatGateway(nat); ok {
				out = append(out, res)
			}
		}
	}
	h.logger.Debugf(ctx, "Listed %d NAT gateways over %d page(s)", len(out), pageNum)
	return out, nil
}

// TagResource creates or overwrites tags on an EC2 resource. Tags not in
// the set are left untouched.
func (h *Handler) TagResource(ctx context.Context, category domain.Category, resourceID string, tags domain.Tags) error {
	if category != domain.CategoryEC2 && category != domain.CategoryIGW && category != domain.CategoryNGW {
		return errors.New(errors.CodeNotImplemented, fmt.Sprintf("resource category '%s' not supported by EC2 handler", category))
	}
	if len(tags) == 0 {
		return nil
	}
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx, h.logger); err != nil {
			return errors.Wrap(err, errors.CodeTimeout, "rate limiter wait failed")
		}
	}
	_, err := h.client.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{resourceID},
		Tags:      toEC2Tags(tags),
	})
	if err != nil {
		return h.errorHandler.Handle(category.Description(), resourceID, err, ctx)
	}
	return nil
}
