package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/plant-care/internal/api/handlers/analytics"
	"github.com/aliskhannn/plant-care/internal/api/handlers/plant"
	"github.com/aliskhannn/plant-care/internal/api/handlers/reminder"
	"github.com/aliskhannn/plant-care/internal/api/handlers/user"
	"github.com/aliskhannn/plant-care/internal/middlewares"
)

// Handlers groups the endpoint handlers the router mounts.
type Handlers struct {
	Users     *user.Handler
	Plants    *plant.Handler
	Reminders *reminder.Handler
	Analytics *analytics.Handler
}

func New(h Handlers, corsOrigins []string) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(corsOrigins))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	users := api.Group("/users/:user_id")
	{
		users.PUT("", h.Users.Upsert)
		users.GET("", h.Users.Get)
		users.DELETE("", h.Users.Deactivate)

		users.POST("/plants", h.Plants.Register)
		users.GET("/plants", h.Plants.List)

		stats := users.Group("/analytics")
		stats.GET("/adherence", h.Analytics.Adherence)
		stats.GET("/streak", h.Analytics.Streak)
		stats.GET("/summary", h.Analytics.Summary)
		stats.GET("/photos", h.Analytics.Photos)
		stats.GET("/stats", h.Analytics.Stats)
	}

	plants := api.Group("/plants/:id")
	{
		plants.GET("", h.Plants.Get)
		plants.PUT("", h.Plants.Update)
		plants.DELETE("", h.Plants.Archive)
		plants.POST("/events", h.Plants.RecordAction)
	}

	reminders := api.Group("/reminders/:id")
	{
		reminders.GET("", h.Reminders.GetStatus)
		reminders.POST("/ack", h.Reminders.Acknowledge)
		reminders.POST("/snooze", h.Reminders.Snooze)
	}

	return e
}
