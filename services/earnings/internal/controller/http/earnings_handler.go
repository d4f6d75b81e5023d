package http

import (
	"net/http"
	"strconv"

	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/middleware"
	"pullup-club/services/earnings/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type EarningsHandler struct {
	earningsUseCase usecase.EarningsUseCase
	logger          *logger.Logger
}

func NewEarningsHandler(earningsUseCase usecase.EarningsUseCase, logger *logger.Logger) *EarningsHandler {
	return &EarningsHandler{
		earningsUseCase: earningsUseCase,
		logger:          logger,
	}
}

type PayoutRequestBody struct {
	AmountDollars *decimal.Decimal `json:"amountDollars" binding:"required" swaggertype:"number"`
}

type PayoutProfileBody struct {
	DestinationHandle string `json:"destinationHandle" binding:"required,email,max=320"`
}

// RequestPayout godoc
// @Summary      Request a payout
// @Description  Reserves part of the available balance for payment to the destination on file
// @Tags         earnings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PayoutRequestBody true "Amount in dollars"
// @Success      201  {object}  entity.PayoutRequest
// @Failure      400  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /payout-request [post]
func (h *EarningsHandler) RequestPayout(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req PayoutRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		errutil.Respond(c, errutil.Validation("amountDollars", "amountDollars must be a number"))
		return
	}

	request, err := h.earningsUseCase.RequestPayout(c.Request.Context(), userID, *req.AmountDollars)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetEarnings godoc
// @Summary      Earnings summary
// @Tags         earnings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.EarningsSummary
// @Router       /earnings [get]
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	summary, err := h.earningsUseCase.GetEarnings(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListPayoutRequests godoc
// @Summary      List own payout requests
// @Tags         earnings
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of requests"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /payout-requests [get]
func (h *EarningsHandler) ListPayoutRequests(c *gin.Context) {
	limit, offset := paging(c)

	requests, err := h.earningsUseCase.ListPayoutRequests(c.Request.Context(), c.GetString(middleware.ContextUserID), limit, offset)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payoutRequests": requests, "count": len(requests)})
}

// GetPayoutProfile godoc
// @Summary      Get payout destination
// @Tags         earnings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.PayoutProfile
// @Failure      404  {object}  map[string]interface{}
// @Router       /payout-profile [get]
func (h *EarningsHandler) GetPayoutProfile(c *gin.Context) {
	profile, err := h.earningsUseCase.GetPayoutProfile(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdatePayoutProfile godoc
// @Summary      Set payout destination
// @Tags         earnings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PayoutProfileBody true "Payout e-mail"
// @Success      200  {object}  entity.PayoutProfile
// @Failure      400  {object}  map[string]interface{}
// @Router       /payout-profile [put]
func (h *EarningsHandler) UpdatePayoutProfile(c *gin.Context) {
	var req PayoutProfileBody
	if err := c.ShouldBindJSON(&req); err != nil {
		errutil.Respond(c, errutil.Validation("destinationHandle", "destinationHandle must be a valid e-mail address"))
		return
	}

	profile, err := h.earningsUseCase.UpdatePayoutProfile(c.Request.Context(), c.GetString(middleware.ContextUserID), req.DestinationHandle)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func paging(c *gin.Context) (int, int) {
	limit := 50
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	return limit, offset
}
