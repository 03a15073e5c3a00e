package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.OrderRepository         = (*OrderRepo)(nil)
	_ repository.OrderItemUnitRepository = (*OrderItemUnitRepo)(nil)
	_ repository.ShipmentRepository      = (*ShipmentRepo)(nil)
)

// OrderRepo lectura de pedidos con su canal y dirección de facturación.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByNumber devuelve nil, nil si el pedido no existe.
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	const query = `
		SELECT o.id, o.number, o.currency_code, o.locale_code, o.created_at,
		       c.id, c.code, c.name, c.color,
		       c.billing_company, c.billing_tax_id, c.billing_country_code,
		       c.billing_street, c.billing_city, c.billing_postcode,
		       a.first_name, a.last_name, a.company, a.street, a.city, a.postcode,
		       a.country_code, a.province_code, a.province_name
		FROM orders o
		LEFT JOIN channels c ON c.id = o.channel_id
		LEFT JOIN order_billing_addresses a ON a.order_id = o.id
		WHERE o.number = $1`
	var (
		o                                                     entity.Order
		chID, chCode, chName, chColor                         *string
		bCompany, bTaxID, bCountry, bStreet, bCity, bPostcode *string
		aFirst, aLast, aCompany, aStreet, aCity, aPostcode    *string
		aCountry, aProvinceCode, aProvinceName                *string
	)
	err := r.q.QueryRow(ctx, query, number).Scan(
		&o.ID, &o.Number, &o.CurrencyCode, &o.LocaleCode, &o.CreatedAt,
		&chID, &chCode, &chName, &chColor,
		&bCompany, &bTaxID, &bCountry, &bStreet, &bCity, &bPostcode,
		&aFirst, &aLast, &aCompany, &aStreet, &aCity, &aPostcode,
		&aCountry, &aProvinceCode, &aProvinceName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if chID != nil {
		ch := &entity.Channel{
			ID:    *chID,
			Code:  derefStr(chCode),
			Name:  derefStr(chName),
			Color: derefStr(chColor),
		}
		// billing_company NULL = canal sin datos de facturación de la tienda
		if bCompany != nil {
			ch.BillingData = &entity.ChannelBillingData{
				Company:     *bCompany,
				TaxID:       derefStr(bTaxID),
				CountryCode: derefStr(bCountry),
				Street:      derefStr(bStreet),
				City:        derefStr(bCity),
				Postcode:    derefStr(bPostcode),
			}
		}
		o.Channel = ch
	}
	if aFirst != nil || aLast != nil || aStreet != nil {
		o.BillingAddress = &entity.Address{
			FirstName:    derefStr(aFirst),
			LastName:     derefStr(aLast),
			Company:      derefStr(aCompany),
			Street:       derefStr(aStreet),
			City:         derefStr(aCity),
			Postcode:     derefStr(aPostcode),
			CountryCode:  derefStr(aCountry),
			ProvinceCode: derefStr(aProvinceCode),
			ProvinceName: derefStr(aProvinceName),
		}
	}
	return &o, nil
}

// OrderItemUnitRepo lectura de unidades de producto con el impuesto registrado en el pedido.
type OrderItemUnitRepo struct {
	q Querier
}

// NewOrderItemUnitRepository construye el adaptador.
func NewOrderItemUnitRepository(q Querier) *OrderItemUnitRepo {
	return &OrderItemUnitRepo{q: q}
}

// GetByID devuelve nil, nil si la unidad no existe.
func (r *OrderItemUnitRepo) GetByID(ctx context.Context, id string) (*entity.OrderItemUnit, error) {
	const query = `
		SELECT u.id, u.total, u.tax_total, u.tax_label, u.tax_rate,
		       i.id, i.order_id, i.product_name, COALESCE(i.variant_name, '')
		FROM order_item_units u
		JOIN order_items i ON i.id = u.order_item_id
		WHERE u.id = $1`
	var (
		unit     entity.OrderItemUnit
		item     entity.OrderItem
		taxLabel *string
		taxRate  decimal.NullDecimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&unit.ID, &unit.Total, &unit.TaxTotal, &taxLabel, &taxRate,
		&item.ID, &item.OrderID, &item.ProductName, &item.VariantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item unit: %w", err)
	}
	unit.OrderItem = &item
	unit.Tax = appliedTax(taxLabel, taxRate)
	return &unit, nil
}

// ShipmentRepo lectura de envíos con el impuesto registrado en el pedido.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// GetByID devuelve nil, nil si el envío no existe.
func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	const query = `
		SELECT id, order_id, method_name, total, tax_total, tax_label, tax_rate
		FROM shipments WHERE id = $1`
	var (
		s        entity.Shipment
		taxLabel *string
		taxRate  decimal.NullDecimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OrderID, &s.MethodName, &s.Total, &s.TaxTotal, &taxLabel, &taxRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	s.Tax = appliedTax(taxLabel, taxRate)
	return &s, nil
}

// appliedTax tax_label NULL = sin impuesto.
func appliedTax(label *string, rate decimal.NullDecimal) *entity.AppliedTax {
	if label == nil {
		return nil
	}
	tax := &entity.AppliedTax{Label: *label}
	if rate.Valid {
		tax.Rate = rate.Decimal
	}
	return tax
}
