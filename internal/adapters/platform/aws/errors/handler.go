package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// HandleAWSError maps an SDK error onto an application error code.
// resourceType: what was being accessed (e.g. "internet gateway", "S3 object")
// resourceID: the identifier for the resource or operation
func HandleAWSError(resourceType string, resourceID string, err error, ctx context.Context) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s", resourceType))
	}

	if ctx.Err() != nil {
		return errors.Wrap(ctx.Err(), errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during AWS %s API call", resourceType))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during AWS %s API call", resourceType))
	}

	code := errorCode(err)
	errMsg := err.Error()

	if isAuthErrorCode(code) ||
		strings.Contains(errMsg, "AuthFailure") ||
		strings.Contains(errMsg, "UnauthorizedOperation") ||
		strings.Contains(errMsg, "AccessDenied") {
		return errors.Wrap(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS authentication error accessing %s %s", resourceType, resourceID))
	}

	if isNotFoundErrorCode(code) || isNotFoundMessage(errMsg) {
		return errors.Wrap(err, errors.CodeResourceNotFound,
			fmt.Sprintf("%s '%s' not found", resourceType, resourceID))
	}

	if isTransient(err, code) {
		return errors.Wrap(err, errors.CodeTransient,
			fmt.Sprintf("transient AWS error accessing %s '%s'", resourceType, resourceID))
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("failed to access %s '%s'", resourceType, resourceID))
}

func errorCode(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode()
	}
	if coded, ok := err.(interface{ ErrorCode() string }); ok && coded != nil {
		return coded.ErrorCode()
	}
	return ""
}

func isNotFoundMessage(errMsg string) bool {
	return strings.Contains(errMsg, "NotFound") ||
		strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "not exist") ||
		strings.Contains(errMsg, "NoSuchKey") ||
		strings.Contains(errMsg, "NoSuchBucket")
}

func isAuthErrorCode(code string) bool {
	switch code {
	case "AuthFailure", "UnauthorizedOperation", "AccessDenied", "AccessDeniedException",
		"ExpiredToken", "InvalidClientTokenId", "SignatureDoesNotMatch":
		return true
	}
	return false
}

func isNotFoundErrorCode(code string) bool {
	switch code {
	// EC2
	case "InvalidInstanceID.NotFound", "InvalidInstanceID.Malformed",
		"InvalidInternetGatewayID.NotFound", "NatGatewayNotFound", "InvalidVpcID.NotFound",
		// S3
		"NoSuchBucket", "NoSuchKey", "NotFound",
		// Generic
		"ResourceNotFoundException", "EntityNotFoundException", "NotFoundException":
		return true
	}
	return false
}

// isTransient reports throttling and server-side faults. Nothing retries on
// this classification; it only separates "try again later" from hard
// failures in logs and summaries.
func isTransient(err error, code string) bool {
	switch code {
	case "Throttling", "ThrottlingException", "RequestLimitExceeded", "TooManyRequestsException",
		"SlowDown", "ServiceUnavailable", "InternalError", "RequestTimeout", "RequestTimeoutException":
		return true
	}

	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil && apiErr.ErrorFault() == smithy.FaultServer {
		return true
	}

	var respErr *awshttp.ResponseError
	if stderrs.As(err, &respErr) && respErr.HTTPStatusCode() >= 500 {
		return true
	}
	return false
}

// DefaultErrorHandler implements shared.ErrorHandler.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(service, operation string, err error, ctx context.Context) error {
	return HandleAWSError(service, operation, err, ctx)
}
