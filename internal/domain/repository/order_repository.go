package repository

import (
	"context"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
)

// OrderRepository puerto de lectura de pedidos.
// GetByNumber devuelve nil, nil si el pedido no existe.
type OrderRepository interface {
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
}

// OrderItemUnitRepository resuelve unidades de producto reembolsadas.
// GetByID devuelve nil, nil si la unidad no existe.
type OrderItemUnitRepository interface {
	GetByID(ctx context.Context, id string) (*entity.OrderItemUnit, error)
}

// ShipmentRepository resuelve envíos reembolsados.
// GetByID devuelve nil, nil si el envío no existe.
type ShipmentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
}
