package handlers

import (
	"net/http"

	"studybuddy/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
	}
}

func (h *ResultHandler) SubmitAnswers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.resultService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ResultHandler) GetUserResults(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	results, err := h.resultService.GetUserResults(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetResultByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resultID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.resultService.GetResultByID(c.Request.Context(), resultID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ResultHandler) GetSummaryResults(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summaryID, ok := parseID(c, "summary_id")
	if !ok {
		return
	}

	results, err := h.resultService.GetSummaryResults(c.Request.Context(), summaryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
