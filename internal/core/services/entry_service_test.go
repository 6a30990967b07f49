package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/core/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// MockEntryRepository is a mock type for the EntryRepository interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockEntryRepository) CountPending(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) MarkApproved(ctx context.Context, entryID string, approvedBy string, approvedAt time.Time) error {
	args := m.Called(ctx, entryID, approvedBy, approvedAt)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// MockAccountReader is a mock type for the AccountReader interface
type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo   *MockEntryRepository
	mockAccountRepo *MockAccountReader
	service         portssvc.EntryService

	cashAccount    domain.Account
	revenueAccount domain.Account
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockAccountRepo = new(MockAccountReader)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockAccountRepo)

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "4010",
		Name:        "Sales Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func (suite *EntryServiceTestSuite) validRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date:            time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		Description:     "Cash sale",
		Reference:       "JE-100",
		DebitAccountID:  suite.cashAccount.AccountID,
		CreditAccountID: suite.revenueAccount.AccountID,
		Amount:          decimal.NewFromInt(500),
	}
}

func (suite *EntryServiceTestSuite) expectAccountLookups() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.cashAccount.AccountID).Return(&suite.cashAccount, nil)
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.revenueAccount.AccountID).Return(&suite.revenueAccount, nil)
}

// --- CreateEntry ---

func (suite *EntryServiceTestSuite) TestCreateEntry_PendingForRegularUser() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.expectAccountLookups()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.validRequest(), actorID, domain.Capability{})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.False(entry.Approved)
	suite.Empty(entry.ApprovedBy)
	suite.Nil(entry.ApprovedAt)
	suite.Equal(actorID, entry.CreatedBy)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_PreApprovedForManager() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.expectAccountLookups()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.validRequest(), actorID, domain.Capability{Manage: true})

	suite.Require().NoError(err)
	suite.True(entry.Approved)
	suite.Equal(actorID, entry.ApprovedBy)
	suite.Require().NotNil(entry.ApprovedAt)
	suite.WithinDuration(time.Now(), *entry.ApprovedAt, time.Second)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		req := suite.validRequest()
		req.Amount = amount

		_, err := suite.service.CreateEntry(ctx, req, uuid.NewString(), domain.Capability{Manage: true})

		suite.Require().ErrorIs(err, apperrors.ErrValidation)
		var vErr *apperrors.ValidationError
		suite.Require().ErrorAs(err, &vErr)
		suite.Equal("amount", vErr.Field)
	}
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_SameAccountBothSides() {
	ctx := context.Background()
	req := suite.validRequest()
	req.CreditAccountID = req.DebitAccountID

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString(), domain.Capability{Manage: true})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("creditAccountID", vErr.Field)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_MissingFields() {
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*dto.CreateEntryRequest)
	}{
		{"date", func(r *dto.CreateEntryRequest) { r.Date = time.Time{} }},
		{"description", func(r *dto.CreateEntryRequest) { r.Description = "" }},
		{"reference", func(r *dto.CreateEntryRequest) { r.Reference = "" }},
	}
	for _, tc := range cases {
		req := suite.validRequest()
		tc.mutate(&req)

		_, err := suite.service.CreateEntry(ctx, req, uuid.NewString(), domain.Capability{Manage: true})

		var vErr *apperrors.ValidationError
		suite.Require().ErrorAs(err, &vErr)
		suite.Equal(tc.field, vErr.Field)
	}
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UnknownDebitAccount() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, req.DebitAccountID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString(), domain.Capability{Manage: true})

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("debitAccountID", vErr.Field)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_InactiveCreditAccount() {
	ctx := context.Background()
	req := suite.validRequest()
	suite.revenueAccount.IsActive = false

	suite.expectAccountLookups()

	_, err := suite.service.CreateEntry(ctx, req, uuid.NewString(), domain.Capability{Manage: true})

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("creditAccountID", vErr.Field)
}

// --- ApproveEntry ---

func (suite *EntryServiceTestSuite) TestApproveEntry_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	entryID := uuid.NewString()
	approved := &domain.JournalEntry{EntryID: entryID, Approved: true, ApprovedBy: actorID}

	suite.mockEntryRepo.On("MarkApproved", ctx, entryID, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(approved, nil).Once()

	entry, err := suite.service.ApproveEntry(ctx, entryID, actorID, domain.Capability{Manage: true})

	suite.Require().NoError(err)
	suite.True(entry.Approved)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestApproveEntry_WithoutCapability() {
	ctx := context.Background()

	_, err := suite.service.ApproveEntry(ctx, uuid.NewString(), uuid.NewString(), domain.Capability{})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "MarkApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestApproveEntry_AlreadyApproved() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("MarkApproved", ctx, entryID, mock.Anything, mock.AnythingOfType("time.Time")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.ApproveEntry(ctx, entryID, uuid.NewString(), domain.Capability{Manage: true})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

// --- DeleteEntry ---

func (suite *EntryServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("DeleteEntry", ctx, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, entryID, uuid.NewString(), domain.Capability{Manage: true})

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestDeleteEntry_WithoutCapability() {
	ctx := context.Background()

	err := suite.service.DeleteEntry(ctx, uuid.NewString(), uuid.NewString(), domain.Capability{})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

// --- ListEntries ---

func (suite *EntryServiceTestSuite) TestListEntries_ClampsLimit() {
	ctx := context.Background()

	suite.mockEntryRepo.On("ListEntriesPage", ctx, 20, (*string)(nil)).Return([]domain.JournalEntry{}, nil, nil).Once()
	suite.mockEntryRepo.On("ListEntriesPage", ctx, 100, (*string)(nil)).Return([]domain.JournalEntry{}, nil, nil).Once()

	_, _, err := suite.service.ListEntries(ctx, 0, nil)
	suite.Require().NoError(err)

	_, _, err = suite.service.ListEntries(ctx, 5000, nil)
	suite.Require().NoError(err)

	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
