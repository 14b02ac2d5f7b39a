package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, period *domain.Period) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, period)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumAmounts(ctx context.Context, ownerID string, isIncome bool, period *domain.Period) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, isIncome, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountsByCategory(ctx context.Context, ownerID string, period *domain.Period) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, period)
	var sums map[string]decimal.Decimal
	if args.Get(0) != nil {
		sums = args.Get(0).(map[string]decimal.Decimal)
	}
	return sums, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock RevokedTokenRepository ---
type MockRevokedTokenRepository struct {
	mock.Mock
}

var _ portsrepo.RevokedTokenRepository = (*MockRevokedTokenRepository)(nil)

func (m *MockRevokedTokenRepository) SaveRevokedToken(ctx context.Context, token domain.RevokedToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRevokedTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
