package handlers

import (
	"net/http"

	"smartresume/models"
	resumeService "smartresume/services/resume"
	"smartresume/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ResumeHandler struct {
	Service resumeService.ResumeService
	Logger  *zap.Logger
}

func NewResumeHandler(svc resumeService.ResumeService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{Service: svc, Logger: logger}
}

// SaveResumeHandler handles POST /api/resumes.
func (h *ResumeHandler) SaveResumeHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var in models.ResumeInput
	if err := bindJSON(c, &in); err != nil {
		logger.Debug("Invalid resume body", zap.Error(err))
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.Service.Save(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "resume": saved})
}

// ListResumesHandler handles GET /api/resumes.
func (h *ResumeHandler) ListResumesHandler(c *gin.Context) {
	resumes, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "resumes": resumes})
}
