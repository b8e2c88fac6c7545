package ec2

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	ec2mocks "github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/ec2/mocks"
	sharedmocks "github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	portsmocks "github.com/olusolaa/customer-tagsync/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/customer-tagsync/internal/errors"
)

type EC2HandlerTestSuite struct {
	suite.Suite
	mockEC2     *ec2mocks.EC2ClientInterface
	mockLimiter *sharedmocks.RateLimiter
	mockLogger  *portsmocks.Logger
	handler     *Handler
	ctx         context.Context
	cancel      context.CancelFunc
}

func (s *EC2HandlerTestSuite) SetupTest() {
	s.mockEC2 = new(ec2mocks.EC2ClientInterface)
	s.mockLimiter = new(sharedmocks.RateLimiter)
	s.mockLogger = new(portsmocks.Logger)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)

	s.mockLogger.On("WithFields", mock.Anything).Return(s.mockLogger).Maybe()
	s.mockLogger.On("Debugf", mock.Anything, mock.Anything, mock.AnythingOfType("[]interface {}")).Maybe().Return()
	s.mockLogger.On("Infof", mock.Anything, mock.Anything, mock.AnythingOfType("[]interface {}")).Maybe().Return()
	s.mockLogger.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("[]interface {}")).Maybe().Return()

	s.handler = NewHandler(aws.Config{Region: "us-east-1"}, s.mockLogger,
		WithEC2Client(s.mockEC2),
		WithRateLimiter(s.mockLimiter),
	)
}

func (s *EC2HandlerTestSuite) TearDownTest() {
	s.cancel()
}

func TestEC2HandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EC2HandlerTestSuite))
}

func (s *EC2HandlerTestSuite) TestListVPCs_MapsTagsAcrossPages() {
	s.mockEC2.On("DescribeVpcs", mock.Anything, mock.MatchedBy(func(in *ec2.DescribeVpcsInput) bool {
		return in.NextToken == nil
	}), mock.Anything).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{
			{VpcId: aws.String("vpc-1"), Tags: []types.Tag{{Key: aws.String("Name"), Value: aws.String("customer-05")}}},
			{VpcId: nil},
		},
		NextToken: aws.String("page-2"),
	}, nil).Once()
	s.mockEC2.On("DescribeVpcs", mock.Anything, mock.MatchedBy(func(in *ec2.DescribeVpcsInput) bool {
		return aws.ToString(in.NextToken) == "page-2"
	}), mock.Anything).Return(&ec2.DescribeVpcsOutput{
		Vpcs: []types.Vpc{{VpcId: aws.String("vpc-2")}},
	}, nil).Once()

	vpcs, err := s.handler.ListVPCs(s.ctx)

	s.Require().NoError(err)
	s.Equal([]domain.VPC{
		{ID: "vpc-1", Tags: domain.Tags{"Name": "customer-05"}},
		{ID: "vpc-2", Tags: domain.Tags{}},
	}, vpcs)
	s.mockEC2.AssertExpectations(s.T())
}

func (s *EC2HandlerTestSuite) TestListVPCs_APIErrorIsClassified() {
	s.mockEC2.On("DescribeVpcs", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("UnauthorizedOperation: you are not authorized")).Once()

	vpcs, err := s.handler.ListVPCs(s.ctx)

	s.Nil(vpcs)
	s.Equal(apperrors.CodePlatformAuthError, apperrors.GetCode(err))
}

func (s *EC2HandlerTestSuite) TestListResources_InstancesAcrossReservations() {
	s.mockEC2.On("DescribeInstances", mock.Anything, mock.MatchedBy(func(in *ec2.DescribeInstancesInput) bool {
		return len(in.Filters) == 1 && aws.ToString(in.Filters[0].Name) == instanceStateFilter
	}), mock.Anything).Return(&ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{Instances: []types.Instance{
				{InstanceId: aws.String("i-1"), VpcId: aws.String("vpc-1")},
				{InstanceId: aws.String("i-2")},
			}},
			{Instances: []types.Instance{{InstanceId: aws.String("i-3"), VpcId: aws.String("vpc-2")}}},
		},
	}, nil).Once()

	res, err := s.handler.ListResources(s.ctx, domain.CategoryEC2)

	s.Require().NoError(err)
	s.Require().Len(res, 3)
	s.Equal("vpc-1", res[0].VpcID)
	s.NoError(res[0].Err)
	s.Empty(res[1].VpcID)
	s.Equal(apperrors.CodeMalformedSchema, apperrors.GetCode(res[1].Err))
	s.Equal("i-3", res[2].ID)
	s.Equal(domain.CategoryEC2, res[2].Category)
}

func (s *EC2HandlerTestSuite) TestListResources_DetachedInternetGateway() {
	s.mockEC2.On("DescribeInternetGateways", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeInternetGatewaysOutput{
			InternetGateways: []types.InternetGateway{
				{InternetGatewayId: aws.String("igw-attached"), Attachments: []types.InternetGatewayAttachment{{VpcId: aws.String("vpc-1")}}},
				{InternetGatewayId: aws.String("igw-detached")},
			},
		}, nil).Once()

	res, err := s.handler.ListResources(s.ctx, domain.CategoryIGW)

	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal("vpc-1", res[0].VpcID)
	s.Equal(apperrors.KindMalformed, apperrors.Kind(res[1].Err))
	s.Contains(res[1].Err.Error(), "has no attachments")
}

func (s *EC2HandlerTestSuite) TestListResources_NatGatewaysUseStateFilter() {
	s.mockEC2.On("DescribeNatGateways", mock.Anything, mock.MatchedBy(func(in *ec2.DescribeNatGatewaysInput) bool {
		return len(in.Filter) == 1 && aws.ToString(in.Filter[0].Name) == natStateFilter
	}), mock.Anything).Return(&ec2.DescribeNatGatewaysOutput{
		NatGateways: []types.NatGateway{{NatGatewayId: aws.String("nat-1"), VpcId: aws.String("vpc-9")}},
	}, nil).Once()

	res, err := s.handler.ListResources(s.ctx, domain.CategoryNGW)

	s.Require().NoError(err)
	s.Equal([]domain.NetworkResource{{Category: domain.CategoryNGW, ID: "nat-1", VpcID: "vpc-9"}}, res)
}

func (s *EC2HandlerTestSuite) TestListResources_UnsupportedCategory() {
	_, err := s.handler.ListResources(s.ctx, domain.CategoryS3)
	s.Equal(apperrors.CodeNotImplemented, apperrors.GetCode(err))
}

func (s *EC2HandlerTestSuite) TestTagResource_SendsSortedTags() {
	s.mockLimiter.On("Wait", mock.Anything, s.mockLogger).Return(nil).Once()
	s.mockEC2.On("CreateTags", mock.Anything, &ec2.CreateTagsInput{
		Resources: []string{"igw-1"},
		Tags: []types.Tag{
			{Key: aws.String("CostCenter"), Value: aws.String("1234")},
			{Key: aws.String("CustomerName"), Value: aws.String("Acme")},
		},
	}, mock.Anything).Return(&ec2.CreateTagsOutput{}, nil).Once()

	err := s.handler.TagResource(s.ctx, domain.CategoryIGW, "igw-1", domain.Tags{"CustomerName": "Acme", "CostCenter": "1234"})

	s.NoError(err)
	s.mockLimiter.AssertExpectations(s.T())
	s.mockEC2.AssertExpectations(s.T())
}

func (s *EC2HandlerTestSuite) TestTagResource_LimiterErrorSkipsCall() {
	s.mockLimiter.On("Wait", mock.Anything, s.mockLogger).Return(context.Canceled).Once()

	err := s.handler.TagResource(s.ctx, domain.CategoryEC2, "i-1", domain.Tags{"A": "1"})

	s.Equal(apperrors.KindCanceled, apperrors.Kind(err))
	s.mockEC2.AssertNotCalled(s.T(), "CreateTags", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EC2HandlerTestSuite) TestTagResource_NotFound() {
	s.mockLimiter.On("Wait", mock.Anything, s.mockLogger).Return(nil).Once()
	s.mockEC2.On("CreateTags", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("InvalidInstanceID.NotFound: The instance ID 'i-1' does not exist")).Once()

	err := s.handler.TagResource(s.ctx, domain.CategoryEC2, "i-1", domain.Tags{"A": "1"})

	s.Equal(apperrors.CodeResourceNotFound, apperrors.GetCode(err))
}

func (s *EC2HandlerTestSuite) TestTagResource_EmptyTagsIsNoop() {
	s.NoError(s.handler.TagResource(s.ctx, domain.CategoryEC2, "i-1", domain.Tags{}))
	s.mockLimiter.AssertNotCalled(s.T(), "Wait", mock.Anything, mock.Anything)
}

func (s *EC2HandlerTestSuite) TestTagResource_RejectsBuckets() {
	err := s.handler.TagResource(s.ctx, domain.CategoryS3, "my-bucket", domain.Tags{"A": "1"})
	s.Equal(apperrors.CodeNotImplemented, apperrors.GetCode(err))
}
