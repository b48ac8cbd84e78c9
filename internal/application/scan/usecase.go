// Package scan contiene el caso de uso del escáner de facturas: dado el texto
// de una factura (o el nombre del archivo) encuentra los IMEIs y las ventas en
// las que se vendieron.
package scan

import (
	"context"
	"fmt"

	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
	domainscan "github.com/vishal7007/MobileShop-api/internal/domain/scan"
)

// BillScanUseCase extrae IMEIs y busca las ventas asociadas.
type BillScanUseCase struct {
	pipeline domainscan.Pipeline
	saleRepo repository.SaleRepository
}

// NewBillScanUseCase construye el caso de uso con la cadena de extractores por
// defecto (texto primero, nombre de archivo como fallback).
func NewBillScanUseCase(saleRepo repository.SaleRepository) *BillScanUseCase {
	return &BillScanUseCase{
		pipeline: domainscan.DefaultPipeline(),
		saleRepo: saleRepo,
	}
}

// Scan extrae los candidatos de IMEI de la solicitud y devuelve las ventas que
// los contienen. Un escaneo sin IMEIs no es un error: devuelve listas vacías.
// Los montos solo se incluyen si el rol puede ver finanzas.
func (uc *BillScanUseCase) Scan(ctx context.Context, role entity.Role, in dto.ScanBillRequest) (*dto.ScanBillResponse, error) {
	imeis := uc.pipeline.Extract(domainscan.Input{Text: in.Text, Filename: in.Filename})
	resp := &dto.ScanBillResponse{
		IMEIs:   imeis,
		Matches: []dto.ScanMatch{},
	}
	if len(imeis) == 0 {
		return resp, nil
	}
	showMoney := role.CanViewFinancials()

	for _, imei := range imeis {
		rows, err := uc.saleRepo.FindItemsByIMEI(imei)
		if err != nil {
			return nil, fmt.Errorf("escáner: buscar ventas por IMEI: %w", err)
		}
		for _, row := range rows {
			match := dto.ScanMatch{
				SaleID:       row.Sale.ID,
				CustomerName: row.Customer.FullName,
				Phone:        row.Customer.Phone,
				PaymentType:  string(row.Sale.PaymentType),
				IMEI:         imei,
			}
			if showMoney {
				amount := row.Item.LineTotal
				match.Amount = &amount
			}
			resp.Matches = append(resp.Matches, match)
		}
	}
	return resp, nil
}
