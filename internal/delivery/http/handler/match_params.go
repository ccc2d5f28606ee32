package handler

import (
	"errors"
	"strconv"
	"strings"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func matchParamsFromQuery(c fiber.Ctx) (usecase.MatchParams, error) {
	var params usecase.MatchParams

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return params, middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		params.Limit = n
	}

	if raw := c.Query("min_score"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 || f > 100 {
			return params, middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
		}
		params.MinScore = f
	}

	if raw := c.Query("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return params, middleware.NewAppError(fiber.StatusBadRequest, "Invalid exclude id", nil, err)
			}
			params.ExcludeIDs = append(params.ExcludeIDs, id)
		}
	}

	if raw := c.Query("prioritize"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return params, middleware.NewAppError(fiber.StatusBadRequest, "Invalid prioritize", nil, err)
		}
		params.Prioritize = b
	}

	return params, nil
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrSubjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrPoolFetchFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Match pool unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
