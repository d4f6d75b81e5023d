package http

import (
	"net/http"
	"strconv"

	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/middleware"
	"pullup-club/services/submission/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUseCase usecase.SubmissionUseCase
	logger            *logger.Logger
}

func NewSubmissionHandler(submissionUseCase usecase.SubmissionUseCase, logger *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
		logger:            logger,
	}
}

type CreateSubmissionRequest struct {
	VideoURL    string `json:"videoUrl" binding:"required"`
	PullUpCount *int   `json:"pullUpCount" binding:"required"`
}

// CreateSubmission godoc
// @Summary      Submit a pull-up video
// @Description  Records a pending submission when the caller is eligible
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSubmissionRequest true "Video and claimed count"
// @Success      201  {object}  entity.Submission
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /submission [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errutil.Respond(c, errutil.BindError(err))
		return
	}

	submission, err := h.submissionUseCase.RecordSubmission(c.Request.Context(), userID, req.VideoURL, *req.PullUpCount)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetEligibility godoc
// @Summary      Check submission eligibility
// @Description  Reports whether the caller may submit a new video right now
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Eligibility
// @Router       /submission-eligibility [get]
func (h *SubmissionHandler) GetEligibility(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	eligibility, err := h.submissionUseCase.CheckEligibility(c.Request.Context(), userID)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, eligibility)
}

// ListSubmissions godoc
// @Summary      List own submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of submissions"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	limit, offset := paging(c)

	submissions, err := h.submissionUseCase.ListSubmissions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions, "count": len(submissions)})
}

// GetLeaderboard godoc
// @Summary      Leaderboard
// @Description  Best approved pull-up count per member
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /leaderboard [get]
func (h *SubmissionHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.submissionUseCase.GetLeaderboard(c.Request.Context())
	if err != nil {
		errutil.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
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
