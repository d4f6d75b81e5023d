package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/services/earnings/internal/entity"
	"pullup-club/services/earnings/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEarningsUseCase struct {
	mock.Mock
}

func (m *MockEarningsUseCase) RequestPayout(ctx context.Context, userID string, amountDollars decimal.Decimal) (*entity.PayoutRequest, error) {
	args := m.Called(ctx, userID, amountDollars.String())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PayoutRequest), args.Error(1)
}

func (m *MockEarningsUseCase) GetEarnings(ctx context.Context, userID string) (*entity.EarningsSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EarningsSummary), args.Error(1)
}

func (m *MockEarningsUseCase) ListPayoutRequests(ctx context.Context, userID string, limit, offset int) ([]*entity.PayoutRequest, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PayoutRequest), args.Error(1)
}

func (m *MockEarningsUseCase) GetPayoutProfile(ctx context.Context, userID string) (*entity.PayoutProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PayoutProfile), args.Error(1)
}

func (m *MockEarningsUseCase) UpdatePayoutProfile(ctx context.Context, userID, destinationHandle string) (*entity.PayoutProfile, error) {
	args := m.Called(ctx, userID, destinationHandle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PayoutProfile), args.Error(1)
}

var _ usecase.EarningsUseCase = (*MockEarningsUseCase)(nil)

func setupTestRouter(handler *EarningsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Next()
	})
	router.POST("/payout-request", handler.RequestPayout)
	router.GET("/earnings", handler.GetEarnings)
	router.PUT("/payout-profile", handler.UpdatePayoutProfile)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRequestPayout_Success(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	mockUseCase.On("RequestPayout", mock.Anything, "user-123", "50").Return(&entity.PayoutRequest{
		ID:                "payout-1",
		UserID:            "user-123",
		AmountCents:       5000,
		Amount:            "50.00",
		DestinationHandle: "member@example.com",
		Status:            entity.PayoutStatusPending,
	}, nil)

	w := postJSON(router, "/payout-request", `{"amountDollars": 50.00}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pending", response["status"])
	assert.Equal(t, float64(50), response["amount"])
	assert.Contains(t, w.Body.String(), `"amount":50.00`)
	mockUseCase.AssertExpectations(t)
}

func TestRequestPayout_InsufficientBalance(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	mockUseCase.On("RequestPayout", mock.Anything, "user-123", "60").Return(nil, usecase.CheckPayout(entity.Balance{EarnedCents: 5000}, 6000))

	w := postJSON(router, "/payout-request", `{"amountDollars": 60}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"code":"InsufficientBalance","error":"requested amount exceeds available balance","available":50.00,"requested":60.00}`, w.Body.String())
}

func TestRequestPayout_MissingAmount(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	w := postJSON(router, "/payout-request", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "RequestPayout", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestPayout_MissingDestination(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	mockUseCase.On("RequestPayout", mock.Anything, "user-123", "10").Return(nil, errutil.MissingDestination())

	w := postJSON(router, "/payout-request", `{"amountDollars": 10}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MissingDestination", response["code"])
}

func TestGetEarnings(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	mockUseCase.On("GetEarnings", mock.Anything, "user-123").Return(&entity.EarningsSummary{
		TotalEarned: "50.00", TotalPaid: "0.00", PendingPayout: "0.00", Available: "50.00",
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/earnings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalEarnedDollars":50.00,"totalPaidDollars":0.00,"pendingPayoutDollars":0.00,"availableDollars":50.00}`, w.Body.String())
}

func TestUpdatePayoutProfile_RejectsNonEmail(t *testing.T) {
	mockUseCase := new(MockEarningsUseCase)
	router := setupTestRouter(NewEarningsHandler(mockUseCase, logger.NewNop()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/payout-profile", bytes.NewBufferString(`{"destinationHandle":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdatePayoutProfile", mock.Anything, mock.Anything, mock.Anything)
}
