package entity

// UnitRefund monto reembolsado sobre una unidad (de producto o de envío).
type UnitRefund struct {
	UnitID string
	Amount int64 // unidades menores (centavos)
}

// OrderItemUnitRefund reembolso sobre una unidad de producto del pedido.
type OrderItemUnitRefund UnitRefund

// ShipmentRefund reembolso sobre el cargo de un envío del pedido.
type ShipmentRefund UnitRefund
