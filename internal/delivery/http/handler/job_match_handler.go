package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobMatchHandler struct {
	usecase usecase.JobMatchUsecase
}

func NewJobMatchHandler(uc usecase.JobMatchUsecase) *JobMatchHandler {
	return &JobMatchHandler{usecase: uc}
}

func (h *JobMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.FindMatches)
}

func (h *JobMatchHandler) FindMatches(c fiber.Ctx) error {
	candidateID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	params, err := matchParamsFromQuery(c)
	if err != nil {
		return err
	}

	results, err := h.usecase.FindJobMatches(c.Context(), candidateID, params)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job matches retrieved", dto.NewMatchListResponse(results))
}
