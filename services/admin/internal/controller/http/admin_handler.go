package http

import (
	"net/http"
	"strconv"

	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/middleware"
	"pullup-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

type ApproveSubmissionRequest struct {
	ApprovedPullUpCount *int             `json:"approvedPullUpCount" binding:"required"`
	RewardDollars       *decimal.Decimal `json:"rewardDollars" swaggertype:"number"`
	Notes               *string          `json:"notes"`
}

type NotesRequest struct {
	Notes *string `json:"notes"`
}

// GetPendingSubmissions godoc
// @Summary      Pending submissions
// @Description  Oldest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of submissions"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/submissions/pending [get]
func (h *AdminHandler) GetPendingSubmissions(c *gin.Context) {
	limit, offset := paging(c)

	submissions, err := h.adminUseCase.ListPendingSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions, "count": len(submissions)})
}

// ApproveSubmission godoc
// @Summary      Approve a submission
// @Description  Sets the approved count and credits the member's earnings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Param        request body ApproveSubmissionRequest true "Review"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /admin/submissions/{id}/approve [post]
func (h *AdminHandler) ApproveSubmission(c *gin.Context) {
	var req ApproveSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errutil.Respond(c, errutil.BindError(err))
		return
	}

	review, err := h.adminUseCase.ApproveSubmission(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), usecase.ApproveInput{
		ApprovedPullUpCount: *req.ApprovedPullUpCount,
		RewardDollars:       req.RewardDollars,
		Notes:               req.Notes,
	})
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// RejectSubmission godoc
// @Summary      Reject a submission
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Submission ID"
// @Param        request body NotesRequest false "Notes"
// @Success      200  {object}  entity.Submission
// @Router       /admin/submissions/{id}/reject [post]
func (h *AdminHandler) RejectSubmission(c *gin.Context) {
	notes, ok := bindNotes(c)
	if !ok {
		return
	}

	submission, err := h.adminUseCase.RejectSubmission(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), notes)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// GetPendingPayouts godoc
// @Summary      Pending payout requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of requests"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/payout-requests/pending [get]
func (h *AdminHandler) GetPendingPayouts(c *gin.Context) {
	limit, offset := paging(c)

	requests, err := h.adminUseCase.ListPendingPayouts(c.Request.Context(), limit, offset)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payoutRequests": requests, "count": len(requests)})
}

// MarkPayoutPaid godoc
// @Summary      Mark a payout as paid
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payout request ID"
// @Param        request body NotesRequest false "Notes"
// @Success      200  {object}  entity.PayoutRequest
// @Failure      409  {object}  map[string]interface{}
// @Router       /admin/payout-requests/{id}/paid [post]
func (h *AdminHandler) MarkPayoutPaid(c *gin.Context) {
	notes, ok := bindNotes(c)
	if !ok {
		return
	}

	request, err := h.adminUseCase.MarkPayoutPaid(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), notes)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// RejectPayout godoc
// @Summary      Reject a payout request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payout request ID"
// @Param        request body NotesRequest false "Notes"
// @Success      200  {object}  entity.PayoutRequest
// @Router       /admin/payout-requests/{id}/reject [post]
func (h *AdminHandler) RejectPayout(c *gin.Context) {
	notes, ok := bindNotes(c)
	if !ok {
		return
	}

	request, err := h.adminUseCase.RejectPayout(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"), notes)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ExportPayouts godoc
// @Summary      Export pending payouts
// @Description  Uploads a CSV of every pending payout request to object storage
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  entity.PayoutExport
// @Failure      503  {object}  map[string]interface{}
// @Router       /admin/payout-requests/export [post]
func (h *AdminHandler) ExportPayouts(c *gin.Context) {
	export, err := h.adminUseCase.ExportPendingPayouts(c.Request.Context())
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, export)
}

// GetInbox godoc
// @Summary      Admin inbox
// @Description  Most recent notifications addressed to admins, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of notifications"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/inbox [get]
func (h *AdminHandler) GetInbox(c *gin.Context) {
	limit, _ := paging(c)

	notifications, err := h.adminUseCase.Inbox(c.Request.Context(), limit)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// bindNotes accepts an empty body.
func bindNotes(c *gin.Context) (*string, bool) {
	if c.Request.ContentLength == 0 {
		return nil, true
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errutil.Respond(c, errutil.BindError(err))
		return nil, false
	}
	return req.Notes, true
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
