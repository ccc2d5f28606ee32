package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	v1 "talent-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	jobs    *handler.JobMatchHandler
	mentors *handler.MentorMatchHandler
	auth    *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, jobs *handler.JobMatchHandler, mentors *handler.MentorMatchHandler, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, jobs: jobs, mentors: mentors, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.auth, r.jobs, r.mentors)
}
