package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/emi"
)

// EmiHandler maneja el tracker de planes EMI (protegido).
type EmiHandler struct {
	tracker *emi.TrackerUseCase
}

// NewEmiHandler construye el handler.
func NewEmiHandler(tracker *emi.TrackerUseCase) *EmiHandler {
	return &EmiHandler{tracker: tracker}
}

// List godoc
// @Summary      Tracker de cuotas EMI
// @Description  Planes con cliente y financiera, ordenados por próximo
//
//	vencimiento. Los montos solo se incluyen para admin/owner.
//
// @Tags         emis
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.EmiTrackerEntry
// @Router       /api/emis [get]
func (h *EmiHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	entries, err := h.tracker.List(c.Context(), GetRole(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
