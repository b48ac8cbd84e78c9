package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/ledger"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// InventoryHandler maneja los movimientos del ledger y la importación masiva (protegido).
type InventoryHandler struct {
	ledger        *ledger.StockLedger
	analyticsRepo repository.AnalyticsRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(l *ledger.StockLedger, analyticsRepo repository.AnalyticsRepository) *InventoryHandler {
	return &InventoryHandler{ledger: l, analyticsRepo: analyticsRepo}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Movimiento manual con delta con signo: purchase, adjustment o return.
//
//	Los movimientos sale salen del flujo de ventas, nunca de aquí.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, delta, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reason := entity.MovementReason(in.Reason)
	if reason == entity.ReasonSale {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los movimientos sale se registran vía POST /api/sales"})
	}
	movement, err := h.ledger.ApplyMovement(c.Context(), in.ProductID, in.Delta, reason, GetUserID(c), "")
	if err != nil {
		return inventoryError(c, err)
	}
	resp := toMovementResponses([]*entity.StockMovement{movement})
	return c.Status(fiber.StatusCreated).JSON(resp[0])
}

// Import godoc
// @Summary      Importación masiva de stock
// @Description  Cada fila se procesa de forma independiente: una fila mala no
//
//	frena a sus hermanas. Matching: IMEI, luego SKU+nombre, luego nombre.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "filas con name, category, price, qty y sku/imei opcionales"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote no tiene filas"})
	}
	return c.JSON(h.ledger.ImportRows(c.Context(), in.Rows, GetUserID(c)))
}

// ListMovements godoc
// @Summary      Log de auditoría del ledger
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "RFC3339, inclusive"
// @Param        to      query  string  false  "RFC3339, exclusivo"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido (RFC3339)"})
	}
	movements, err := h.ledger.ListMovements(c.Context(), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toMovementResponses(movements))
}

// Summary godoc
// @Summary      Resumen de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	units, value, err := h.analyticsRepo.GetStockSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockSummaryResponse{Units: units, Value: value})
}

// inventoryError mapea errores del ledger a estados HTTP.
func inventoryError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente de %s: pedidas %d, disponibles %d", stockErr.ProductName, stockErr.Requested, stockErr.Available),
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseTimeQuery acepta RFC3339 o fecha corta (2006-01-02); nil si viene vacío.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
