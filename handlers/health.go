package handlers

import (
	"net/http"
	"time"

	"smartresume/utils"

	"github.com/gin-gonic/gin"
)

const RootMessage = "✅ Smart Resume Builder Backend running!"

// isoMillis matches the ISO-8601 timestamps browsers produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	Monitor *utils.HealthMonitor
	Now     func() time.Time
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor, Now: time.Now}
}

func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// HealthHandler reports liveness only; it touches no dependency.
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"time": h.Now().UTC().Format(isoMillis),
	})
}

// DependencyHealthHandler returns the monitor's last snapshot.
func (h *HealthHandler) DependencyHealthHandler(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, utils.HealthStatus{OK: true, Services: map[string]bool{}})
		return
	}
	c.JSON(http.StatusOK, h.Monitor.Status())
}
