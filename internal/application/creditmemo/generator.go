package creditmemo

import (
	"context"
	"fmt"

	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// CreditMemoGenerator arma la nota de crédito completa a partir de los datos del reembolso.
// No persiste nada: el único efecto es consumir un consecutivo y un identificador.
type CreditMemoGenerator struct {
	orderRepo          repository.OrderRepository
	orderItemUnitLines LineItemGenerator
	shipmentLines      LineItemGenerator
	taxItems           *TaxItemsGenerator
	numbers            NumberGenerator
	clock              Clock
	identifiers        IdentifierGenerator
}

// NewCreditMemoGenerator construye el generador inyectando todos sus colaboradores.
func NewCreditMemoGenerator(
	orderRepo repository.OrderRepository,
	orderItemUnitLines LineItemGenerator,
	shipmentLines LineItemGenerator,
	taxItems *TaxItemsGenerator,
	numbers NumberGenerator,
	clock Clock,
	identifiers IdentifierGenerator,
) *CreditMemoGenerator {
	return &CreditMemoGenerator{
		orderRepo:          orderRepo,
		orderItemUnitLines: orderItemUnitLines,
		shipmentLines:      shipmentLines,
		taxItems:           taxItems,
		numbers:            numbers,
		clock:              clock,
		identifiers:        identifiers,
	}
}

// Generate construye la nota de crédito del pedido orderNumber.
//
// Retorna:
//   - domain.ErrOrderNotFound  si el pedido no existe (sin consumir consecutivo ni identificador).
//   - domain.ErrInvalidInput   si el pedido no tiene canal o dirección de facturación.
//   - cualquier error de los colaboradores, sin reintentos.
//
// total no se valida contra la suma de las líneas: el reparto proporcional de reembolsos
// puede diferir por redondeo.
func (g *CreditMemoGenerator) Generate(
	ctx context.Context,
	orderNumber string,
	total int64,
	unitRefunds []entity.OrderItemUnitRefund,
	shipmentRefunds []entity.ShipmentRefund,
	comment string,
) (*entity.CreditMemo, error) {
	// ── 1. Pedido ─────────────────────────────────────────────────────────────
	order, err := g.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido %s: %w", orderNumber, err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.Channel == nil || order.BillingAddress == nil {
		return nil, fmt.Errorf("%w: pedido %s sin canal o dirección de facturación", domain.ErrInvalidInput, orderNumber)
	}

	// ── 2. Líneas: unidades de producto y luego envíos, en el orden recibido ──
	lines := make([]entity.LineItem, 0, len(unitRefunds)+len(shipmentRefunds))
	for _, r := range unitRefunds {
		line, err := g.orderItemUnitLines.Generate(ctx, order.ID, r.UnitID, r.Amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	for _, r := range shipmentRefunds {
		line, err := g.shipmentLines.Generate(ctx, order.ID, r.UnitID, r.Amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	// ── 3. Impuestos agrupados y datos de facturación congelados ─────────────
	taxItems := g.taxItems.Generate(lines)
	from := BuildCustomerBillingData(order.BillingAddress)
	to := BuildShopBillingData(order.Channel)

	// ── 4. Consecutivo, identificador y fecha de emisión ─────────────────────
	number, err := g.numbers.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generar consecutivo: %w", err)
	}
	id := g.identifiers.Generate()
	issuedAt := g.clock.Now()

	return &entity.CreditMemo{
		ID:           id,
		Number:       number,
		OrderID:      order.ID,
		OrderNumber:  order.Number,
		Total:        total,
		CurrencyCode: order.CurrencyCode,
		LocaleCode:   order.LocaleCode,
		Channel: entity.ChannelRef{
			Code:  order.Channel.Code,
			Name:  order.Channel.Name,
			Color: order.Channel.Color,
		},
		LineItems: lines,
		TaxItems:  taxItems,
		Comment:   comment,
		IssuedAt:  issuedAt,
		From:      from,
		To:        to,
	}, nil
}
