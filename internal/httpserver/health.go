package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"physics-writing-assistant/pkg/response"
)

const (
	HealthMessage = "Physics writing assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "physics-writing-assistant"

	// EnvironmentProduction switches on production behaviour.
	EnvironmentProduction = "production"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once the persona panel is available.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No personas registered"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	n := len(srv.discussionUC.Personas(c.Request.Context()))
	if n == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "no personas registered",
		})
		return
	}
	body := srv.status("ready")
	body["personas"] = n
	response.OK(c, body)
}

// liveCheck
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
