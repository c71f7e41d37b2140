package routes

import (
	"github.com/gin-gonic/gin"

	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/auth"
	"api-playground/internal/api/v1/handlers"
)

// Handlers holds all handlers mounted by RegisterRoutes
type Handlers struct {
	Greeting *handlers.GreetingHandler
	Items    *handlers.ItemHandler
	Users    *handlers.UserHandler
}

// NewHandlers builds the handler set over the given user table
func NewHandlers(users *auth.UserTable) *Handlers {
	return &Handlers{
		Greeting: handlers.NewGreetingHandler(),
		Items:    handlers.NewItemHandler(),
		Users:    handlers.NewUserHandler(users),
	}
}

// RegisterRoutes registers all demo routes
func RegisterRoutes(router gin.IRouter, h *Handlers) {
	middleware.RegisterValidators()

	router.GET("/", h.Greeting.Root)
	router.GET("/hello/:name", h.Greeting.Hello)
	router.GET("/sum/:num1/:num2", h.Greeting.Sum)
	router.GET("/model/:model_name", h.Greeting.Model)
	router.GET("/files/*file_path", h.Greeting.File)

	items := router.Group("/items")
	{
		items.GET("", h.Items.List)
		items.GET("/", h.Items.List)
		items.GET("/search", h.Items.Search)
		items.GET("/:item_id", h.Items.Get)
		items.POST("/:item_id", h.Items.Create)
		items.PUT("/:item_id", h.Items.Update)
	}

	router.GET("/user/me", auth.RequireBearer(), h.Users.Me)
	router.GET("/users/:username", h.Users.Get)
}
