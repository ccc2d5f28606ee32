package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MentorMatchHandler struct {
	usecase usecase.MentorMatchUsecase
}

func NewMentorMatchHandler(uc usecase.MentorMatchUsecase) *MentorMatchHandler {
	return &MentorMatchHandler{usecase: uc}
}

func (h *MentorMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/mentors", h.FindMatches)
}

func (h *MentorMatchHandler) FindMatches(c fiber.Ctx) error {
	menteeID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	params, err := matchParamsFromQuery(c)
	if err != nil {
		return err
	}

	results, err := h.usecase.FindMentorMatches(c.Context(), menteeID, params)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, "Mentor matches retrieved", dto.NewMatchListResponse(results))
}
