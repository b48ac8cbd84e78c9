package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vishal7007/MobileShop-api/internal/application/analytics"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
)

// DashboardHandler maneja el resumen del dashboard (protegido).
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	loc *time.Location // zona de la tienda para los cortes de día
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{uc: uc, loc: loc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Stock actual, ventas del rango con apertura cash/EMI y más
//
//	vendidos. range acepta today (default) o month; alternativamente
//	from/to como fechas (from inclusive, to exclusivo). Los ingresos
//	solo se incluyen para admin/owner.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "today | month"
// @Param        from   query  string  false  "fecha 2006-01-02, inclusive"
// @Param        to     query  string  false  "fecha 2006-01-02, exclusivo"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	now := time.Now().In(h.loc)

	var from, to time.Time
	switch {
	case c.Query("from") != "" || c.Query("to") != "":
		f, err := time.ParseInLocation("2006-01-02", c.Query("from"), h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido (2006-01-02)"})
		}
		t, err := time.ParseInLocation("2006-01-02", c.Query("to"), h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido (2006-01-02)"})
		}
		from, to = f, t
	case c.Query("range") == "month":
		from, to = analytics.MonthRange(now)
	default:
		from, to = analytics.DayRange(now)
	}

	summary, err := h.uc.GetSummary(c.Context(), GetRole(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
