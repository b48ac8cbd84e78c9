package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/scan"
)

// ScanHandler maneja el escáner de facturas (protegido).
type ScanHandler struct {
	uc *scan.BillScanUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(uc *scan.BillScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// ScanBill godoc
// @Summary      Buscar ventas por IMEIs de una factura
// @Description  El cliente envía el texto que extrajo (OCR externo) y el nombre
//
//	del archivo como fallback; se devuelven los IMEIs encontrados y
//	las ventas que los contienen. Montos solo para admin/owner.
//
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanBillRequest  true  "text, filename"
// @Success      200   {object}  dto.ScanBillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan/bill [post]
func (h *ScanHandler) ScanBill(c *fiber.Ctx) error {
	var in dto.ScanBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Scan(c.Context(), GetRole(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
