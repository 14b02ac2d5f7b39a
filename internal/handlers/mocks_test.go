package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByPeriod(ctx context.Context, userID string, month, year int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, month, year)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, userID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

var _ portssvc.SummarySvc = (*MockSummaryService)(nil)

func (m *MockSummaryService) Summarize(ctx context.Context, userID string) (*domain.Summary, error) {
	args := m.Called(ctx, userID)
	var s *domain.Summary
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Summary)
	}
	return s, args.Error(1)
}

func (m *MockSummaryService) SummarizeByPeriod(ctx context.Context, userID string, month, year int) (*domain.Summary, error) {
	args := m.Called(ctx, userID, month, year)
	var s *domain.Summary
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Summary)
	}
	return s, args.Error(1)
}

func (m *MockSummaryService) Categories() []domain.Category {
	args := m.Called()
	return args.Get(0).([]domain.Category)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*domain.IssuedToken, error) {
	args := m.Called(ctx, user)
	var issued *domain.IssuedToken
	if args.Get(0) != nil {
		issued = args.Get(0).(*domain.IssuedToken)
	}
	return issued, args.Error(1)
}

func (m *MockTokenService) RevokeToken(ctx context.Context, userID string, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenService) PurgeExpiredRevocations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
