package creditmemo

import (
	"context"
	"fmt"

	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ LineItemGenerator = (*OrderItemUnitLineItemGenerator)(nil)
	_ LineItemGenerator = (*ShipmentLineItemGenerator)(nil)
)

// OrderItemUnitLineItemGenerator construye líneas a partir de unidades de producto del pedido.
type OrderItemUnitLineItemGenerator struct {
	unitRepo repository.OrderItemUnitRepository
}

// NewOrderItemUnitLineItemGenerator construye el generador.
func NewOrderItemUnitLineItemGenerator(unitRepo repository.OrderItemUnitRepository) *OrderItemUnitLineItemGenerator {
	return &OrderItemUnitLineItemGenerator{unitRepo: unitRepo}
}

// Generate resuelve la unidad y arma la línea con el impuesto que el pedido registró para ella.
// Una unidad de otro pedido se trata como inexistente.
func (g *OrderItemUnitLineItemGenerator) Generate(ctx context.Context, orderID, unitID string, amount int64) (*entity.LineItem, error) {
	unit, err := g.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("obtener unidad %s: %w", unitID, err)
	}
	if unit == nil || unit.OrderItem == nil || unit.OrderItem.OrderID != orderID {
		return nil, fmt.Errorf("%w: unidad de pedido %s en pedido %s", domain.ErrNotFound, unitID, orderID)
	}
	return newLineItem(unitLabel(unit), amount, unit.Total, unit.TaxTotal, unit.Tax), nil
}

func unitLabel(unit *entity.OrderItemUnit) string {
	item := unit.OrderItem
	if item.VariantName == "" || item.VariantName == item.ProductName {
		return item.ProductName
	}
	return item.ProductName + " (" + item.VariantName + ")"
}

// ShipmentLineItemGenerator construye líneas a partir de cargos de envío del pedido.
type ShipmentLineItemGenerator struct {
	shipmentRepo repository.ShipmentRepository
}

// NewShipmentLineItemGenerator construye el generador.
func NewShipmentLineItemGenerator(shipmentRepo repository.ShipmentRepository) *ShipmentLineItemGenerator {
	return &ShipmentLineItemGenerator{shipmentRepo: shipmentRepo}
}

// Generate resuelve el envío y arma la línea con el impuesto que el pedido registró para él.
func (g *ShipmentLineItemGenerator) Generate(ctx context.Context, orderID, shipmentID string, amount int64) (*entity.LineItem, error) {
	shipment, err := g.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("obtener envío %s: %w", shipmentID, err)
	}
	if shipment == nil || shipment.OrderID != orderID {
		return nil, fmt.Errorf("%w: envío %s en pedido %s", domain.ErrNotFound, shipmentID, orderID)
	}
	return newLineItem(shipment.MethodName, amount, shipment.Total, shipment.TaxTotal, shipment.Tax), nil
}

func newLineItem(label string, amount, total, taxTotal int64, tax *entity.AppliedTax) *entity.LineItem {
	line := &entity.LineItem{Label: label, Amount: amount}
	if tax == nil {
		return line
	}
	rate := tax.Label
	line.TaxRate = &rate
	line.TaxAmount = proportionalTax(amount, total, taxTotal)
	return line
}

// proportionalTax reparte el impuesto histórico de la unidad según el monto reembolsado.
// Reembolso total: el impuesto registrado tal cual. Parcial: taxTotal*amount/total redondeado.
func proportionalTax(amount, total, taxTotal int64) int64 {
	if amount == total {
		return taxTotal
	}
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(taxTotal).
		Mul(decimal.NewFromInt(amount)).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart()
}
