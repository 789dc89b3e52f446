package routes

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/interfaces/web"
)

type WebRouteConfig struct {
	WebHandler *web.WebHandler
}

// SetupWebRoutes registers the server-rendered pages.
func SetupWebRoutes(engine *gin.Engine, config *WebRouteConfig) {
	engine.GET("/", config.WebHandler.Index)

	tickets := engine.Group("/tickets")
	{
		tickets.GET("/new", config.WebHandler.NewTicketForm)
		tickets.POST("/new", config.WebHandler.CreateTicket)
		tickets.GET("/:id", config.WebHandler.TicketDetail)
		tickets.POST("/:id/comments", config.WebHandler.AddComment)
	}
}
