package handlers

import (
	"net/http"

	"studybuddy/services"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService *services.SummaryService
}

func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := h.summaryService.CreateSummary(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *SummaryHandler) GetUserSummaries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summaries, err := h.summaryService.GetUserSummaries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *SummaryHandler) GetSummaryByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summaryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.summaryService.GetSummaryByID(c.Request.Context(), summaryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *SummaryHandler) DeleteSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summaryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.summaryService.DeleteSummary(c.Request.Context(), summaryID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
