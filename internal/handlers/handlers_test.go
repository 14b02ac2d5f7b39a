package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/handlers"
	"github.com/SscSPs/wallet_api/internal/platform/config"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const handlerTestSecret = "handlers-test-secret"

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func testConfig() *config.Config {
	return &config.Config{
		IsProduction:  true,
		JWTSecret:     handlerTestSecret,
		AuthRateLimit: "100-M",
	}
}

type HandlersTestSuite struct {
	suite.Suite
	txnSvc     *MockTransactionService
	summarySvc *MockSummaryService
	userSvc    *MockUserService
	tokenSvc   *MockTokenService
	router     *gin.Engine
	userID     string
	tokenID    string
	expiresAt  time.Time
	token      string
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.txnSvc = new(MockTransactionService)
	suite.summarySvc = new(MockSummaryService)
	suite.userSvc = new(MockUserService)
	suite.tokenSvc = new(MockTokenService)
	suite.router = suite.newRouter(testConfig(), nil)

	suite.userID = uuid.NewString()
	suite.tokenID = uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	token, expiresAt, err := utils.GenerateJWT(suite.userID, suite.tokenID, handlerTestSecret, "wallet-test", now, time.Hour)
	suite.Require().NoError(err)
	suite.token, suite.expiresAt = token, expiresAt
}

func (suite *HandlersTestSuite) newRouter(cfg *config.Config, db handlers.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services := &portssvc.ServiceContainer{
		Transaction: suite.txnSvc,
		Summary:     suite.summarySvc,
		User:        suite.userSvc,
		Token:       suite.tokenSvc,
	}
	suite.Require().NoError(handlers.RegisterRoutes(r, cfg, services, &utils.PosthogClientWrapper{}, db))
	return r
}

func (suite *HandlersTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		suite.tokenSvc.On("IsTokenRevoked", mock.Anything, suite.tokenID).Return(false, nil).Maybe()
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](suite *HandlersTestSuite, w *httptest.ResponseRecorder) T {
	var out T
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (suite *HandlersTestSuite) sampleTransaction() *domain.Transaction {
	date, err := domain.ParseDate("15-03-2024")
	suite.Require().NoError(err)
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       suite.userID,
		Amount:        decimal.RequireFromString("50.00"),
		Category:      "Food",
		Date:          date,
		Comment:       "Groceries",
	}
}

// --- Health ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())

	cfg := testConfig()
	cfg.EnableDBCheck = true
	suite.router = suite.newRouter(cfg, stubPinger{err: errors.New("connection refused")})
	w = suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

// --- Authentication gate ---

func (suite *HandlersTestSuite) TestTransactions_RequireToken() {
	w := suite.do(http.MethodGet, "/api/transactions", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.txnSvc.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestTransactions_RevokedToken() {
	suite.tokenSvc.On("IsTokenRevoked", mock.Anything, suite.tokenID).Return(true, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions", nil, true)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.txnSvc.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

// --- Transactions ---

func (suite *HandlersTestSuite) TestListTransactions() {
	txn := suite.sampleTransaction()
	suite.txnSvc.On("ListTransactions", mock.Anything, suite.userID).Return([]domain.Transaction{*txn}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[[]dto.TransactionResponse]](suite, w)
	suite.Equal("Success", resp.Status)
	suite.Equal(http.StatusOK, resp.Code)
	suite.Equal("All transaction list", resp.Message)
	suite.Require().Len(resp.Data, 1)
	suite.Equal(txn.TransactionID, resp.Data[0].TransactionID)
	suite.Equal("15-03-2024", resp.Data[0].Date)
	suite.Contains(w.Body.String(), `"amount":"50"`)
}

func (suite *HandlersTestSuite) TestListTransactionsByPeriod() {
	suite.txnSvc.On("ListTransactionsByPeriod", mock.Anything, suite.userID, 3, 2024).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions/3/2024", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[[]dto.TransactionResponse]](suite, w)
	suite.Empty(resp.Data)
	suite.txnSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListTransactionsByPeriod_MalformedWindow() {
	for _, path := range []string{"/api/transactions/13/2024", "/api/transactions/abc/2024", "/api/transactions/0/2024", "/api/transactions/3/24"} {
		suite.Run(path, func() {
			w := suite.do(http.MethodGet, path, nil, true)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.txnSvc.AssertNotCalled(suite.T(), "ListTransactionsByPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTransaction() {
	txn := suite.sampleTransaction()
	suite.txnSvc.On("CreateTransaction", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(50)) &&
			req.Category == "Food" && req.Date == "15-03-2024" &&
			req.IsIncome != nil && !*req.IsIncome
	})).Return(txn, nil).Once()

	w := suite.do(http.MethodPost, "/api/transactions", `{"amount":"50.00","category":"Food","date":"15-03-2024","isIncome":false,"comment":"Groceries"}`, true)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.Response[dto.TransactionResponse]](suite, w)
	suite.Equal("Created", resp.Status)
	suite.Equal("Added new transaction", resp.Message)
	suite.Equal(txn.TransactionID, resp.Data.TransactionID)
	suite.txnSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateTransaction_BadRequests() {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing amount", body: `{"category":"Food","date":"15-03-2024","isIncome":false}`, wantMsg: "missing: amount"},
		{name: "missing date", body: `{"amount":"5","category":"Food","isIncome":false}`, wantMsg: "missing: date"},
		{name: "missing isIncome", body: `{"amount":"5","category":"Food","date":"15-03-2024"}`, wantMsg: "missing: isIncome"},
		{name: "bad date", body: `{"amount":"5","category":"Food","date":"2024/31/31","isIncome":false}`, wantMsg: "DD-MM-YYYY"},
		{name: "not json", body: `amount=5`, wantMsg: "Invalid request format"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/transactions", tt.body, true)

			suite.Equal(http.StatusBadRequest, w.Code)
			resp := decodeBody[dto.ErrorResponse](suite, w)
			suite.Contains(resp.Error, tt.wantMsg)
		})
	}
	suite.txnSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTransaction_ValidationFromService() {
	suite.txnSvc.On("CreateTransaction", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: the amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/transactions", `{"amount":"-1","category":"Food","date":"15-03-2024","isIncome":false}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := decodeBody[dto.ErrorResponse](suite, w)
	suite.Contains(resp.Error, "the amount must be positive")
}

func (suite *HandlersTestSuite) TestUpdateTransaction() {
	txn := suite.sampleTransaction()
	txn.Amount = decimal.RequireFromString("75.1")
	suite.txnSvc.On("UpdateTransaction", mock.Anything, txn.TransactionID, suite.userID, mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Amount != nil && req.Amount.Equal(txn.Amount) && req.Category == nil && req.Date == nil
	})).Return(txn, nil).Once()

	w := suite.do(http.MethodPatch, "/api/transactions/"+txn.TransactionID, `{"amount":"75.10"}`, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.Response[dto.TransactionResponse]](suite, w)
	suite.Equal("Transaction updated", resp.Message)
	suite.True(resp.Data.Amount.Equal(txn.Amount))
}

func (suite *HandlersTestSuite) TestUpdateTransaction_Errors() {
	id := uuid.NewString()
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "foreign record", err: fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden), wantStatus: http.StatusForbidden},
		{name: "not found", err: fmt.Errorf("failed to get transaction: %w", apperrors.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "Transaction not found"},
		{name: "store failure", err: errors.New("connection reset by peer"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.txnSvc.On("UpdateTransaction", mock.Anything, id, suite.userID, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPatch, "/api/transactions/"+id, `{"comment":"x"}`, true)

			suite.Equal(tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				resp := decodeBody[dto.ErrorResponse](suite, w)
				suite.Equal(tt.wantMsg, resp.Error)
			}
		})
	}
}

func (suite *HandlersTestSuite) TestDeleteTransaction() {
	id := uuid.NewString()
	suite.txnSvc.On("DeleteTransaction", mock.Anything, id, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/transactions/"+id, nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[dto.DeleteTransactionResponse]](suite, w)
	suite.Equal("Transaction deleted", resp.Message)
	suite.Equal(id, resp.Data.TransactionID)
}

func (suite *HandlersTestSuite) TestDeleteTransaction_MalformedID() {
	w := suite.do(http.MethodDelete, "/api/transactions/not-a-uuid", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.txnSvc.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestDeleteTransaction_Foreign() {
	id := uuid.NewString()
	suite.txnSvc.On("DeleteTransaction", mock.Anything, id, suite.userID).Return(apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodDelete, "/api/transactions/"+id, nil, true)

	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Categories and totals ---

func (suite *HandlersTestSuite) TestListCategories() {
	suite.summarySvc.On("Categories").Return(domain.DefaultCategories).Once()

	w := suite.do(http.MethodGet, "/api/transactions/categories", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[[]dto.CategoryResponse]](suite, w)
	suite.Len(resp.Data, len(domain.DefaultCategories)+1)
	suite.Equal(domain.IncomeCategory, resp.Data[len(resp.Data)-1].Name)
}

func (suite *HandlersTestSuite) TestGetTotals() {
	summary := domain.BuildSummary(domain.DefaultCatalog(), decimal.NewFromInt(1000), decimal.NewFromInt(50),
		map[string]decimal.Decimal{"Food": decimal.NewFromInt(50)}, nil)
	suite.summarySvc.On("Summarize", mock.Anything, suite.userID).Return(&summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions/categories/totals", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[dto.SummaryResponse]](suite, w)
	suite.True(resp.Data.Balance.Equal(decimal.NewFromInt(950)))
	suite.Len(resp.Data.PerCategory, domain.DefaultCatalog().Len())
	suite.Nil(resp.Data.Month)
}

func (suite *HandlersTestSuite) TestGetTotalsByPeriod() {
	period := &domain.Period{Month: 3, Year: 2024}
	summary := domain.BuildSummary(domain.DefaultCatalog(), decimal.Zero, decimal.NewFromInt(50),
		map[string]decimal.Decimal{"Food": decimal.NewFromInt(50)}, period)
	suite.summarySvc.On("SummarizeByPeriod", mock.Anything, suite.userID, 3, 2024).Return(&summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/transactions/categories/3/2024", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[dto.SummaryResponse]](suite, w)
	suite.True(resp.Data.Balance.Equal(decimal.NewFromInt(-50)))
	suite.Require().NotNil(resp.Data.Month)
	suite.Equal(3, *resp.Data.Month)
	suite.Equal(2024, *resp.Data.Year)
}

func (suite *HandlersTestSuite) TestGetTotalsByPeriod_MalformedWindow() {
	w := suite.do(http.MethodGet, "/api/transactions/categories/13/2024", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.summarySvc.AssertNotCalled(suite.T(), "SummarizeByPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Users ---

func (suite *HandlersTestSuite) TestRegister() {
	user := &domain.User{UserID: uuid.NewString(), Name: "Ada", Email: "ada@example.com"}
	req := dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	suite.userSvc.On("RegisterUser", mock.Anything, req).Return(user, nil).Once()

	w := suite.do(http.MethodPost, "/api/users/register", req, false)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.Response[dto.UserResponse]](suite, w)
	suite.Equal(user.UserID, resp.Data.UserID)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlersTestSuite) TestRegister_EmailInUse() {
	req := dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	suite.userSvc.On("RegisterUser", mock.Anything, req).Return(nil, fmt.Errorf("%w: email in use", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/users/register", req, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Email in use", decodeBody[dto.ErrorResponse](suite, w).Error)
}

func (suite *HandlersTestSuite) TestLogin() {
	user := &domain.User{UserID: suite.userID, Name: "Ada", Email: "ada@example.com"}
	issued := &domain.IssuedToken{Token: "signed.jwt.token", TokenID: suite.tokenID, ExpiresAt: suite.expiresAt}
	suite.userSvc.On("AuthenticateUser", mock.Anything, "ada@example.com", "secret123").Return(user, nil).Once()
	suite.tokenSvc.On("GenerateAccessToken", mock.Anything, user).Return(issued, nil).Once()

	w := suite.do(http.MethodPost, "/api/users/login", dto.LoginRequest{Email: "ada@example.com", Password: "secret123"}, false)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.Response[dto.LoginResponse]](suite, w)
	suite.Equal("Login success", resp.Message)
	suite.Equal("signed.jwt.token", resp.Data.Token)
	suite.Equal(suite.userID, resp.Data.User.UserID)
}

func (suite *HandlersTestSuite) TestLogin_WrongCredentials() {
	suite.userSvc.On("AuthenticateUser", mock.Anything, "ada@example.com", "nope").
		Return(nil, fmt.Errorf("%w: email or password is wrong", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/api/users/login", dto.LoginRequest{Email: "ada@example.com", Password: "nope"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Email or password is wrong", decodeBody[dto.ErrorResponse](suite, w).Error)
	suite.tokenSvc.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestLogin_RateLimited() {
	cfg := testConfig()
	cfg.AuthRateLimit = "1-M"
	suite.router = suite.newRouter(cfg, nil)
	suite.userSvc.On("AuthenticateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnauthorized).Once()
	body := dto.LoginRequest{Email: "ada@example.com", Password: "nope"}

	first := suite.do(http.MethodPost, "/api/users/login", body, false)
	second := suite.do(http.MethodPost, "/api/users/login", body, false)

	suite.Equal(http.StatusUnauthorized, first.Code)
	suite.Equal(http.StatusTooManyRequests, second.Code)
	suite.Equal("0", second.Header().Get("X-RateLimit-Remaining"))
}

func (suite *HandlersTestSuite) TestLogout() {
	suite.tokenSvc.On("RevokeToken", mock.Anything, suite.userID, suite.tokenID, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(suite.expiresAt)
	})).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/users/logout", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("Logout success", decodeBody[dto.Response[any]](suite, w).Message)
	suite.tokenSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCurrentUser() {
	user := &domain.User{UserID: suite.userID, Name: "Ada", Email: "ada@example.com"}
	suite.userSvc.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/users/current", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.Response[dto.UserResponse]](suite, w)
	suite.Equal("ada@example.com", resp.Data.Email)
}

func (suite *HandlersTestSuite) TestProfileAlias() {
	user := &domain.User{UserID: suite.userID, Name: "Ada", Email: "ada@example.com"}
	suite.userSvc.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/users/profile", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(suite.userID, decodeBody[dto.Response[dto.UserResponse]](suite, w).Data.UserID)

	unauthed := suite.do(http.MethodGet, "/api/users/profile", nil, false)
	suite.Equal(http.StatusUnauthorized, unauthed.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.AuthRateLimit = "lots"

	err := handlers.RegisterRoutes(gin.New(), cfg, &portssvc.ServiceContainer{}, &utils.PosthogClientWrapper{}, nil)

	assert.Error(t, err)
}
