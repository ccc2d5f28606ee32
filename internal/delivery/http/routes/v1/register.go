package v1

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, auth *middleware.AuthMiddleware, jobs *handler.JobMatchHandler, mentors *handler.MentorMatchHandler) {
	if r == nil {
		return
	}

	matches := r.Group("/matches", auth.Middleware())
	jobs.RegisterRoutes(matches)
	mentors.RegisterRoutes(matches)
}
