package handlers

import (
	"strconv"

	"iclug-backend/internal/core/services"
	"iclug-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles aggregate report endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// parseYear extracts the required year query parameter
func parseYear(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Query("year"))
}

// Matrix returns the per-member monthly payment matrix for a year
// @Summary Payment matrix
// @Description Per-member report of 12 monthly totals plus a yearly sum
// @Tags Stats
// @Accept json
// @Produce json
// @Param year query int true "Report year"
// @Success 200 {array} services.MatrixRow
// @Failure 422 {object} response.Response
// @Router /stats/matrix [get]
func (h *StatsHandler) Matrix(c *fiber.Ctx) error {
	year, err := parseYear(c)
	if err != nil {
		return response.UnprocessableEntity(c, "year query parameter is required and must be an integer")
	}

	rows, err := h.statsService.GetMatrix(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to build payment matrix")
	}

	return c.JSON(rows)
}

// Summary returns dashboard totals for a year
// @Summary Yearly summary
// @Description Member count, yearly payment sum and all-time donation sum
// @Tags Stats
// @Accept json
// @Produce json
// @Param year query int true "Report year"
// @Success 200 {object} services.Summary
// @Failure 422 {object} response.Response
// @Router /stats/summary [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	year, err := parseYear(c)
	if err != nil {
		return response.UnprocessableEntity(c, "year query parameter is required and must be an integer")
	}

	summary, err := h.statsService.GetSummary(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to build summary")
	}

	return c.JSON(summary)
}
