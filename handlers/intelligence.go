package handlers

import (
	"net/http"

	"smartresume/models"
	ai "smartresume/services/intelligence"
	"smartresume/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the suggestion endpoint.
type AIHandler struct {
	Service ai.SuggestionService
	Logger  *zap.Logger
}

func NewAIHandler(svc ai.SuggestionService, logger *zap.Logger) *AIHandler {
	return &AIHandler{Service: svc, Logger: logger}
}

// GenerateHandler handles POST /api/generate.
func (h *AIHandler) GenerateHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.SuggestionRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Debug("Invalid generate request", zap.Error(err))
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	suggestion, err := h.Service.GenerateSuggestion(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, models.SuggestionResponse{OK: true, Suggestion: suggestion})
}
