package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "deskd/internal/interfaces/http/handlers/ticket"
	"deskd/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	SummaryHandler *tickethandlers.SummaryHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupTicketRoutes registers the versioned JSON API. Mutating routes go
// behind the auth gate when one is configured; reads stay open.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	api := engine.Group("/api/v1")

	if config.RateLimiter != nil {
		api.Use(config.RateLimiter.Limit())
	}

	requireAuth := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if config.AuthMiddleware == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{config.AuthMiddleware.RequireAuth(), handler}
	}

	tickets := api.Group("/tickets")
	{
		tickets.POST("", requireAuth(config.TicketHandler.CreateTicket)...)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/:id/comments", requireAuth(config.TicketHandler.AddComment)...)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", requireAuth(config.TicketHandler.UpdateTicket)...)
		tickets.DELETE("/:id", requireAuth(config.TicketHandler.DeleteTicket)...)
	}

	api.GET("/summary", config.SummaryHandler.GetSummary)
}
