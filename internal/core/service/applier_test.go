package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	portsmocks "github.com/olusolaa/customer-tagsync/internal/core/ports/mocks"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

type ApplierTestSuite struct {
	suite.Suite
	store      *portsmocks.DocumentStore
	ec2Tagger  *portsmocks.ResourceTagger
	s3Tagger   *portsmocks.ResourceTagger
	mockLogger *portsmocks.Logger
	registry   *TaggerRegistry
	ctx        context.Context
}

func (s *ApplierTestSuite) SetupTest() {
	s.store = portsmocks.NewDocumentStore(s.T())
	s.ec2Tagger = portsmocks.NewResourceTagger(s.T())
	s.s3Tagger = portsmocks.NewResourceTagger(s.T())
	s.mockLogger = new(portsmocks.Logger)
	s.ctx = context.Background()

	s.mockLogger.On("WithFields", mock.Anything).Return(s.mockLogger).Maybe()
	s.mockLogger.On("Debugf", mock.Anything, mock.Anything, mock.AnythingOfType("[]interface {}")).Maybe().Return()
	s.mockLogger.On("Infof", mock.Anything, mock.Anything, mock.AnythingOfType("[]interface {}")).Maybe().Return()

	s.ec2Tagger.On("Categories").Return(domain.NetworkCategories).Once()
	s.s3Tagger.On("Categories").Return([]domain.Category{domain.CategoryS3}).Once()
	s.registry = NewTaggerRegistry()
	s.Require().NoError(s.registry.Register(s.ec2Tagger))
	s.Require().NoError(s.registry.Register(s.s3Tagger))
}

func TestApplierTestSuite(t *testing.T) {
	suite.Run(t, new(ApplierTestSuite))
}

func (s *ApplierTestSuite) newApplier(opts ApplierOptions) *Applier {
	return NewApplier(s.store, s.registry, opts, s.mockLogger)
}

func (s *ApplierTestSuite) TestApply_ResourceTagsOverrideDefaults() {
	doc := domain.NewDocument(domain.Tags{"A": "1", "B": "2"})
	doc.Set(domain.CategoryEC2, "i-1", domain.Tags{"B": "9"})
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryEC2, "i-1", domain.Tags{"A": "1", "B": "9"}).Return(nil).Once()

	summary, err := s.newApplier(ApplierOptions{}).Apply(s.ctx)

	s.Require().NoError(err)
	s.Equal(domain.JobApply, summary.Job)
	s.Equal(1, summary.Count(domain.StatusTagged))
	s.Equal(domain.Tags{"A": "1", "B": "2"}, doc.DefaultTags)
}

func (s *ApplierTestSuite) TestApply_OneCallPerResourceAndFailuresContinue() {
	doc := domain.NewDocument(domain.Tags{"Platform": "core"})
	doc.Set(domain.CategoryEC2, "i-1", domain.Tags{"CustomerName": "Acme"})
	doc.Set(domain.CategoryEC2, "i-2", domain.Tags{"CustomerName": "Acme"})
	doc.Set(domain.CategoryIGW, "igw-1", domain.Tags{"CustomerName": "Globex"})
	doc.Set(domain.CategoryS3, "logs-bucket", domain.Tags{})
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()

	tagErr := errors.New(errors.CodeResourceNotFound, "instance gone")
	s.mockLogger.On("Errorf", mock.Anything, tagErr, mock.Anything, mock.AnythingOfType("[]interface {}")).Return().Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryEC2, "i-1", mock.Anything).Return(tagErr).Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryEC2, "i-2", mock.Anything).Return(nil).Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryIGW, "igw-1", mock.Anything).Return(nil).Once()
	s.s3Tagger.On("TagResource", mock.Anything, domain.CategoryS3, "logs-bucket", domain.Tags{"Platform": "core"}).Return(nil).Once()

	summary, err := s.newApplier(ApplierOptions{}).Apply(s.ctx)

	s.Require().NoError(err)
	s.Len(summary.Results, 4)
	s.Equal(3, summary.Count(domain.StatusTagged))
	s.Equal(1, summary.Count(domain.StatusFailed))
	s.Equal("i-1", summary.Results[0].ResourceID)
	s.Same(tagErr, summary.Results[0].Error)
	s.mockLogger.AssertExpectations(s.T())
}

func (s *ApplierTestSuite) TestApply_DryRunMakesNoCalls() {
	doc := domain.NewDocument(domain.Tags{"A": "1"})
	doc.Set(domain.CategoryNGW, "nat-1", domain.Tags{"CustomerName": "Initech"})
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()

	summary, err := s.newApplier(ApplierOptions{DryRun: true}).Apply(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, summary.Count(domain.StatusDryRun))
	s.Equal(domain.Tags{"A": "1", "CustomerName": "Initech"}, summary.Results[0].Tags)
	s.ec2Tagger.AssertNotCalled(s.T(), "TagResource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApplierTestSuite) TestApply_DisabledCategorySkipped() {
	doc := domain.NewDocument(domain.Tags{"A": "1"})
	doc.Set(domain.CategoryS3, "logs-bucket", nil)
	doc.Set(domain.CategoryEC2, "i-1", nil)
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryEC2, "i-1", domain.Tags{"A": "1"}).Return(nil).Once()

	summary, err := s.newApplier(ApplierOptions{Categories: domain.NetworkCategories}).Apply(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, summary.Count(domain.StatusTagged))
	s.Equal(1, summary.Count(domain.StatusSkipped))
	s.s3Tagger.AssertNotCalled(s.T(), "TagResource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ApplierTestSuite) TestApply_EmptyTagSetSkipped() {
	doc := domain.NewDocument(nil)
	doc.Set(domain.CategoryEC2, "i-1", domain.Tags{})
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()

	summary, err := s.newApplier(ApplierOptions{}).Apply(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, summary.Count(domain.StatusSkipped))
}

func (s *ApplierTestSuite) TestApply_LoadFailureAborts() {
	loadErr := errors.New(errors.CodeStorageReadError, "no document")
	s.store.On("Load", mock.Anything).Return(nil, loadErr).Once()

	summary, err := s.newApplier(ApplierOptions{}).Apply(s.ctx)

	s.Same(loadErr, err)
	s.Empty(summary.Results)
}

func (s *ApplierTestSuite) TestApply_CancellationStopsRun() {
	doc := domain.NewDocument(domain.Tags{"A": "1"})
	doc.Set(domain.CategoryEC2, "i-1", nil)
	doc.Set(domain.CategoryEC2, "i-2", nil)
	s.store.On("Load", mock.Anything).Return(doc, nil).Once()
	s.ec2Tagger.On("TagResource", mock.Anything, domain.CategoryEC2, "i-1", mock.Anything).
		Return(errors.Wrap(context.Canceled, errors.CodeTimeout, "rate limiter wait failed")).Once()

	summary, err := s.newApplier(ApplierOptions{}).Apply(s.ctx)

	s.Equal(errors.KindCanceled, errors.Kind(err))
	s.Empty(summary.Results)
}
