package handlers

import (
	"net/http"
	"time"

	"partypilot/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest background health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	healthy := status.Mongo && status.Cache

	// Before the first check runs the snapshot is zero-valued; report ok so
	// startup probes do not flap.
	code := http.StatusOK
	state := "ok"
	if !healthy && !status.CheckedAt.IsZero() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(code, gin.H{
		"status":    state,
		"mongo":     status.Mongo,
		"cache":     status.Cache,
		"checkedAt": status.CheckedAt.Format(time.RFC3339),
	})
}
