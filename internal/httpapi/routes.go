package httpapi

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all scansion routes with the router.
//
// Description:
//
//	Registers all /api/* endpoints with the given Gin router group.
//	The router group should already have any required middleware
//	applied.
//
// Inputs:
//
//	rg - Gin router group (typically the engine's root group)
//	h  - the handlers instance
//
// Endpoints:
//
//	POST /api/islah          - graded scansion of a single line
//	POST /api/meter/dominant - resolve the dominant meter across lines
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	api := rg.Group("/api")
	{
		api.POST("/islah", h.HandleIslah)
		api.POST("/meter/dominant", h.HandleMeterDominant)
	}
}
