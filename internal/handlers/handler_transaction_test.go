package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/handlers"
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/adreenastore/pos_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactionsByMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ ports.TransactionService = (*MockTransactionService)(nil)

// --- Mock StoreProfileService ---
type MockStoreProfileService struct {
	mock.Mock
}

func (m *MockStoreProfileService) GetActiveProfile(ctx context.Context, sessionID string) (*models.StoreProfile, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreProfile), args.Error(1)
}
func (m *MockStoreProfileService) ListAvailableProfiles(ctx context.Context) ([]models.StoreProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StoreProfile), args.Error(1)
}
func (m *MockStoreProfileService) SwitchActiveProfile(ctx context.Context, sessionID string, profileID string) error {
	args := m.Called(ctx, sessionID, profileID)
	return args.Error(0)
}
func (m *MockStoreProfileService) UpdateActiveProfile(ctx context.Context, sessionID string, req dto.UpdateStoreProfileRequest) (*models.StoreProfile, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreProfile), args.Error(1)
}

var _ ports.StoreProfileService = (*MockStoreProfileService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetMonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonthlySummary), args.Error(1)
}

var _ ports.ReportingService = (*MockReportingService)(nil)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) RenderReceipt(ctx context.Context, sessionID string, transactionID string) (*dto.ReceiptResponse, error) {
	args := m.Called(ctx, sessionID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReceiptResponse), args.Error(1)
}

var _ ports.ReceiptService = (*MockReceiptService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTxnService   *MockTransactionService
	mockReceiptSvc   *MockReceiptService
	mockStoreProfile *MockStoreProfileService
	jwtSecret        string
}

// generateTestToken creates a signed JWT carrying the session ID as subject.
func (suite *TransactionHandlerTestSuite) generateTestToken(sessionID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-test",
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidators())

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTxnService = new(MockTransactionService)
	suite.mockReceiptSvc = new(MockReceiptService)
	suite.mockStoreProfile = new(MockStoreProfileService)

	cfg := &config.Config{
		JWTSecret:           suite.jwtSecret,
		JWTExpiryDuration:   time.Hour,
		JWTIssuer:           "pos-test",
		CashierUsername:     "kasir",
		CashierPasswordHash: "",
	}

	handlers.RegisterRoutes(suite.router, cfg, &ports.ServiceContainer{
		Transaction:  suite.mockTxnService,
		StoreProfile: suite.mockStoreProfile,
		Reporting:    new(MockReportingService),
		Receipt:      suite.mockReceiptSvc,
	})
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	sessionID := uuid.NewString()
	date := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	expected := &models.Transaction{
		TransactionID: "AS-2403001",
		Date:          date,
		TotalAmount:   decimal.NewFromInt(250000),
		Status:        models.StatusCompleted,
	}

	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return len(req.Items) == 1 && req.Items[0].Name == "Gamis Polos"
	})).Return(expected, nil).Once()

	body := dto.CreateTransactionRequest{
		Date: date,
		Items: []dto.TransactionItemRequest{
			{Name: "Gamis Polos", Price: decimal.NewFromInt(250000), CostPrice: decimal.NewFromInt(160000), Quantity: 1},
		},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/", body, suite.generateTestToken(sessionID))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("AS-2403001", resp.TransactionID)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	body := dto.CreateTransactionRequest{
		Date: time.Now(),
		Items: []dto.TransactionItemRequest{
			{Name: "Gamis", Price: decimal.NewFromInt(1000), CostPrice: decimal.NewFromInt(500), Quantity: 1},
		},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/", body, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_DuplicateIdentifier() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body := dto.CreateTransactionRequest{
		Date: time.Now(),
		Items: []dto.TransactionItemRequest{
			{Name: "Gamis", Price: decimal.NewFromInt(1000), CostPrice: decimal.NewFromInt(500), Quantity: 1},
		},
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/", body, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Unauthorized() {
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/", dto.CreateTransactionRequest{}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockTxnService.On("GetTransactionByID", mock.Anything, "AS-2403099").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/AS-2403099", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ExplicitMonth() {
	txns := []models.Transaction{
		{TransactionID: "AS-2403002", Date: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "AS-2403001", Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockTxnService.On("ListTransactionsByMonth", mock.Anything, 2024, time.March).
		Return(txns, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/?year=2024&month=3", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Equal("AS-2403002", resp.Transactions[0].TransactionID)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultsToCurrentMonth() {
	now := time.Now()
	suite.mockTxnService.On("ListTransactionsByMonth", mock.Anything, now.Year(), now.Month()).
		Return([]models.Transaction{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadMonthParam() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/?year=2024&month=abc", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ListTransactionsByMonth")
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnService.On("UpdateTransaction", mock.Anything, "AS-2403099", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	note := "revisi"
	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/AS-2403099", dto.UpdateTransactionRequest{Note: &note}, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, "AS-2403001").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/AS-2403001", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, "AS-2403099").
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/AS-2403099", nil, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetReceipt_Success() {
	sessionID := uuid.NewString()
	receipt := &dto.ReceiptResponse{
		TransactionID: "AS-2403001",
		Text:          "Adreena Store\nTotal Rp250.000\n",
		ShareLink:     "https://wa.me/62812?text=...",
	}
	suite.mockReceiptSvc.On("RenderReceipt", mock.Anything, sessionID, "AS-2403001").
		Return(receipt, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/AS-2403001/receipt", nil, suite.generateTestToken(sessionID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("AS-2403001", resp.TransactionID)
	suite.Contains(resp.Text, "Adreena Store")
	suite.mockReceiptSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
