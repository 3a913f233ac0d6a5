package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers the router mounts.
type HandlerBundle struct {
	// Health endpoints
	RootHandler             gin.HandlerFunc
	HealthHandler           gin.HandlerFunc
	DependencyHealthHandler gin.HandlerFunc

	// AI endpoints
	GenerateHandler gin.HandlerFunc

	// Resume endpoints
	SaveResumeHandler  gin.HandlerFunc
	ListResumesHandler gin.HandlerFunc
}
