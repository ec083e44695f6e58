package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/application/usecase"
)

// DashboardHandler KPIs y vencimientos del dashboard de cumplimiento.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de cumplimiento del portafolio
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deadlines godoc
// @Summary      Obligaciones próximas a vencer
// @Tags         dashboard
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(30)
// @Success      200   {object}  dto.DeadlinesResponse
// @Router       /api/dashboard/deadlines [get]
func (h *DashboardHandler) Deadlines(c *fiber.Ctx) error {
	out, err := h.uc.GetDeadlines(c.Context(), c.QueryInt("days", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
